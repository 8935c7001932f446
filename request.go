package lti

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Request models one outgoing or incoming LTI message: the HTTP method, the
// resource URL and the named parameter set transmitted with it. A Request is
// built per message, mutated incrementally, signed or verified once and then
// discarded; it must not be shared between concurrent signing operations.
type Request struct {
	Method string
	URL    string
	Params Params
}

// NewRequest returns a Request for the given method and resource URL with an
// empty parameter set.
func NewRequest(method, rawURL string) *Request {
	return &Request{
		Method: method,
		URL:    rawURL,
		Params: make(Params),
	}
}

// ConsumerKey returns the oauth_consumer_key parameter.
func (r *Request) ConsumerKey() string {
	return r.Params.Get(ConsumerKeyParameter)
}

// SetConsumerKey sets the oauth_consumer_key parameter.
func (r *Request) SetConsumerKey(key string) {
	r.Params.Set(ConsumerKeyParameter, key)
}

// Nonce returns the oauth_nonce parameter.
func (r *Request) Nonce() string {
	return r.Params.Get(NonceParameter)
}

// SetNonce sets the oauth_nonce parameter.
func (r *Request) SetNonce(nonce string) {
	r.Params.Set(NonceParameter, nonce)
}

// Signature returns the oauth_signature parameter.
func (r *Request) Signature() string {
	return r.Params.Get(SignatureParameter)
}

// SetSignature sets the oauth_signature parameter.
func (r *Request) SetSignature(signature string) {
	r.Params.Set(SignatureParameter, signature)
}

// SignatureMethod returns the oauth_signature_method parameter.
func (r *Request) SignatureMethod() string {
	return r.Params.Get(SignatureMethodParameter)
}

// SetSignatureMethod sets the oauth_signature_method parameter.
func (r *Request) SetSignatureMethod(method string) {
	r.Params.Set(SignatureMethodParameter, method)
}

// Version returns the oauth_version parameter.
func (r *Request) Version() string {
	return r.Params.Get(VersionParameter)
}

// SetVersion sets the oauth_version parameter.
func (r *Request) SetVersion(version string) {
	r.Params.Set(VersionParameter, version)
}

// Callback returns the oauth_callback parameter.
func (r *Request) Callback() string {
	return r.Params.Get(CallbackParameter)
}

// SetCallback sets the oauth_callback parameter.
func (r *Request) SetCallback(callback string) {
	r.Params.Set(CallbackParameter, callback)
}

// BodyHash returns the oauth_body_hash parameter.
func (r *Request) BodyHash() string {
	return r.Params.Get(BodyHashParameter)
}

// SetBodyHash sets the oauth_body_hash parameter.
func (r *Request) SetBodyHash(hash string) {
	r.Params.Set(BodyHashParameter, hash)
}

// Timestamp returns the oauth_timestamp parameter as a calendar time. The
// stored value is a decimal count of seconds since the Unix epoch; a value
// that does not parse as an integer is reported as an error, never coerced
// to zero.
func (r *Request) Timestamp() (time.Time, error) {
	raw := r.Params.Get(TimestampParameter)
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("lti: parse oauth_timestamp %q: %w", raw, err)
	}
	return time.Unix(seconds, 0).UTC(), nil
}

// SetTimestamp stores t as oauth_timestamp, in seconds since the Unix epoch.
func (r *Request) SetTimestamp(t time.Time) {
	r.Params.Set(TimestampParameter, strconv.FormatInt(t.Unix(), 10))
}

// CustomParameters serializes the caller-defined parameters of the request
// into query-string form. Only names prefixed custom_ or _ext qualify; any
// other stored name is invisible to this view. The second return value is
// false when no qualifying parameter is set.
func (r *Request) CustomParameters() (string, bool) {
	custom := make(Params)
	for name, value := range r.Params {
		if isCustomName(name) {
			custom.Set(name, value)
		}
	}
	if len(custom) == 0 {
		return "", false
	}
	return EncodeQuery(custom), true
}

// SetCustomParameters parses a query-string shaped input and merges its
// custom_ and _ext prefixed entries into the request. Entries under any
// other name are discarded.
func (r *Request) SetCustomParameters(query string) {
	for name, value := range ParseQuery(query) {
		if isCustomName(name) {
			r.Params.Set(name, value)
		}
	}
}

// Only these two prefixes are recognized, a deliberate LTI convention.
func isCustomName(name string) bool {
	return strings.HasPrefix(name, CustomPrefix) || strings.HasPrefix(name, ExtensionPrefix)
}

// GenerateSignature signs the request's own parameter set with the consumer
// secret and stores the result under oauth_signature before returning it.
func (r *Request) GenerateSignature(secret string) (string, error) {
	signature, err := r.GenerateSignatureFor(r.Params, secret)
	if err != nil {
		return "", err
	}
	r.SetSignature(signature)
	return signature, nil
}

// GenerateSignatureFor signs an explicit working parameter set against the
// request's method and URL. The set may be a copy of the request's own
// parameters or a superset carrying extra fields the caller wants signed.
// Any oauth_signature entry in the set is excluded from the computation.
//
// The URL's own query string is decoded and merged into params before the
// base string is built. After signing, every merged query name is deleted
// from params again: those values travel in the URL, so the caller can
// serialize the remaining set as message-body parameters without sending
// them twice.
func (r *Request) GenerateSignatureFor(params Params, secret string) (string, error) {
	if r.URL == "" {
		return "", ErrMissingURL
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return "", fmt.Errorf("lti: parse resource url: %w", err)
	}

	query := ParseQuery(u.RawQuery)
	for name, value := range query {
		params.Set(name, value)
	}

	baseString := buildBaseString(r.Method, u, params)

	signature, err := signBaseString(baseString, params.Get(SignatureMethodParameter), secret, "")
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{"signature": signature}).Debug("request signed")

	for name := range query {
		params.Delete(name)
	}

	return signature, nil
}
