/*
Package lti signs and verifies LTI 1.x request exchanges between a tool
consumer and a tool provider. LTI doesn't need the full OAuth 1 roundtrip,
it's basically single legged: the library builds the canonical signature base
string from a request's method, URL and parameters and computes or verifies
the keyed HMAC signature over it.

Signed body request, e.g. when sending data back to an LTI consumer, such as
grade passback:

	req, err := lti.SignedBodyRequest("POST", "https://consumer.example/outcome", "key", "secret", xmlBody)

Signed x-www-form-urlencoded form request, e.g. when launching a tool
provider from an LMS:

	req, err := lti.SignedFormRequest("https://tool.example/launch", "key", "secret", form)

Alternatively work with the request model directly:

	req := lti.NewRequest("POST", "https://tool.example/launch")
	req.SetConsumerKey("key123")
	req.SetNonce(nonce)
	req.SetTimestamp(time.Now())
	req.SetSignatureMethod(lti.SignatureMethodHMACSHA1)
	req.SetVersion(lti.Version)

	signature, err := req.GenerateSignature("secret")
*/
package lti
