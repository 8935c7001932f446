package lti

import (
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/easygenerator/go-lti/util"
)

// BuildAuthorizationHeader generates an Authorization header value for
// sending data back to an LTI consumer, such as grade passback. It populates
// the default OAuth parameters, hashes the body into oauth_body_hash, signs
// the whole set and renders it as an OAuth header string.
func BuildAuthorizationHeader(method, rawURL, key, secret, body string) (string, error) {
	req := NewRequest(method, rawURL)
	if err := addDefaultOAuthParams(req, key); err != nil {
		return "", err
	}
	req.SetBodyHash(ComputeBodyHash([]byte(body)))

	if _, err := req.GenerateSignature(secret); err != nil {
		return "", err
	}

	header := `OAuth realm=""`
	for _, name := range req.Params.Keys() {
		header += fmt.Sprintf(`,%s="%s"`, escape(name), escape(req.Params.Get(name)))
	}

	log.WithFields(log.Fields{"header": header}).Info("authorization header created")

	return header, nil
}

// SignedBodyRequest returns an http.Request with the body attached and a
// valid Authorization header, ready for a callback to an LTI consumer. An
// empty method defaults to POST.
func SignedBodyRequest(method, rawURL, key, secret, body string) (*http.Request, error) {
	if method == "" {
		method = http.MethodPost
	}

	header, err := BuildAuthorizationHeader(method, rawURL, key, secret, body)
	if err != nil {
		return nil, err
	}

	request, err := http.NewRequest(method, rawURL, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Add("Authorization", header)

	return request, nil
}

// SignedFormRequest builds a POST request for an LTI launch: the supplied
// form parameters are supplemented with the default OAuth parameters, signed
// and serialized as the x-www-form-urlencoded body. Parameters already
// present in the URL's query string are signed but left out of the body.
func SignedFormRequest(rawURL, key, secret string, form Params) (*http.Request, error) {
	if len(form) == 0 {
		return nil, ErrEmptyForm
	}

	req := &Request{Method: http.MethodPost, URL: rawURL, Params: form}
	if err := addDefaultOAuthParams(req, key); err != nil {
		return nil, err
	}
	if _, err := req.GenerateSignature(secret); err != nil {
		return nil, err
	}

	request, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(EncodeQuery(form)))
	if err != nil {
		return nil, err
	}
	request.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	return request, nil
}

// ComputeBodyHash returns the base64 SHA-1 digest of a request body, the
// value transmitted as oauth_body_hash.
func ComputeBodyHash(body []byte) string {
	digest := sha1.Sum(body)
	return base64.StdEncoding.EncodeToString(digest[:])
}

// addDefaultOAuthParams fills in the OAuth parameters common to every signed
// request. oauth_body_hash and oauth_signature are computed later by the
// caller.
func addDefaultOAuthParams(req *Request, key string) error {
	nonce, err := util.Nonce()
	if err != nil {
		return err
	}

	req.SetVersion(Version)
	req.SetNonce(nonce)
	req.SetTimestamp(time.Now())
	req.SetConsumerKey(key)
	req.SetSignatureMethod(SignatureMethodHMACSHA1)

	return nil
}
