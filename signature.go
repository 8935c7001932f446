package lti

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"
	"net/url"
)

// signatureHashes maps each supported oauth_signature_method value to its
// hash constructor. The table is fixed at init and never mutated.
var signatureHashes = map[string]func() hash.Hash{
	SignatureMethodHMACSHA1:   sha1.New,
	SignatureMethodHMACSHA256: sha256.New,
	SignatureMethodHMACSHA384: sha512.New384,
	SignatureMethodHMACSHA512: sha512.New,
}

// signBaseString computes the keyed signature over a canonical base string.
// The signing key is escape(consumerSecret)&escape(tokenSecret); LTI is
// single legged so the token secret is normally empty. An empty method means
// HMAC-SHA1. An unknown method is an error, never a silent fallback.
func signBaseString(baseString, method, consumerSecret, tokenSecret string) (string, error) {
	if method == "" {
		method = SignatureMethodHMACSHA1
	}
	newHash, ok := signatureHashes[method]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSignatureMethod, method)
	}

	key := escape(consumerSecret) + "&" + escape(tokenSecret)

	mac := hmac.New(newHash, []byte(key))
	mac.Write([]byte(baseString))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// ValidateSignature recomputes the signature for a received request and
// compares it against the transmitted oauth_signature. The comparison is
// constant time. The form should hold every parameter the sender signed;
// parameters carried in the URL's own query string are merged in
// automatically.
func ValidateSignature(method, rawURL string, form url.Values, secret string) (bool, error) {
	params := make(Params, len(form))
	for name := range form {
		params.Set(name, form.Get(name))
	}

	received := params.Get(SignatureParameter)
	params.Delete(SignatureParameter)

	req := &Request{Method: method, URL: rawURL, Params: params}
	expected, err := req.GenerateSignatureFor(params, secret)
	if err != nil {
		return false, err
	}

	return hmac.Equal([]byte(received), []byte(expected)), nil
}
