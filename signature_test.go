package lti

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const launchBaseString = "POST&https%3A%2F%2Ftool.example%2Flaunch&foo%3Dbar%26oauth_consumer_key%3Dkey123%26oauth_nonce%3Dabc%26oauth_signature_method%3DHMAC-SHA1%26oauth_timestamp%3D1390847020%26oauth_version%3D1.0"

func TestSignBaseString(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		consumerSecret string
		tokenSecret    string
		baseString     string
		want           string
	}{
		{
			name:           "hmac-sha1",
			method:         SignatureMethodHMACSHA1,
			consumerSecret: "secret1",
			baseString:     launchBaseString,
			want:           "7FIWpNl0wTGTRDl75/YC8dIpe00=",
		},
		{
			name:           "empty method defaults to hmac-sha1",
			consumerSecret: "secret1",
			baseString:     launchBaseString,
			want:           "7FIWpNl0wTGTRDl75/YC8dIpe00=",
		},
		{
			name:           "hmac-sha256",
			method:         SignatureMethodHMACSHA256,
			consumerSecret: "secret1",
			baseString:     launchBaseString,
			want:           "jaAoXJ/+xmfCduxskg3gOYbQrsSLy3JPxiYJNbkCrbw=",
		},
		{
			name:           "token secret is part of the key",
			method:         SignatureMethodHMACSHA1,
			consumerSecret: "s3cr3t",
			tokenSecret:    "tok",
			baseString:     "GET&http%3A%2F%2Fexample.com%2Fr&a%3D1%26a%3D2%26z%3D9",
			want:           "9p37re3u9cOHwRmaGIk9oABMLfY=",
		},
		{
			name:           "secrets are escaped before keying",
			method:         SignatureMethodHMACSHA1,
			consumerSecret: "se cret",
			tokenSecret:    "tok&en",
			baseString:     "POST&http%3A%2F%2Fexample.com%2FLaunch%20Pad&_ext_lms%3Dmoodle%25262%26custom_name%3D%25C3%259Cnit%2520Test%26oauth_consumer_key%3Dkey%2520123",
			want:           "te1DVmbtlaxjM/i/6pJ7BdYe1tA=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := signBaseString(tt.baseString, tt.method, tt.consumerSecret, tt.tokenSecret)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignBaseStringUnsupportedMethod(t *testing.T) {
	_, err := signBaseString(launchBaseString, "RSA-SHA1", "secret1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedSignatureMethod)
}

func TestValidateSignature(t *testing.T) {
	rawURL := "https://tool.example/launch?foo=bar"
	secret := "secret1"

	req := NewRequest("POST", rawURL)
	req.SetConsumerKey("key123")
	req.SetNonce("abc")
	req.Params.Set(TimestampParameter, "1390847020")
	req.SetSignatureMethod(SignatureMethodHMACSHA1)
	req.SetVersion(Version)

	_, err := req.GenerateSignature(secret)
	require.NoError(t, err)

	form := url.Values{}
	for name, value := range req.Params {
		form.Set(name, value)
	}

	ok, err := ValidateSignature("POST", rawURL, form, secret)
	require.NoError(t, err)
	assert.True(t, ok, "signature should verify with the signing secret")

	ok, err = ValidateSignature("POST", rawURL, form, "wrongSecret")
	require.NoError(t, err)
	assert.False(t, ok, "signature must not verify with another secret")
}

func TestValidateSignatureDetectsTampering(t *testing.T) {
	rawURL := "https://tool.example/launch?foo=bar"
	secret := "secret1"

	req := NewRequest("POST", rawURL)
	req.SetConsumerKey("key123")
	req.SetNonce("abc")
	req.Params.Set(TimestampParameter, "1390847020")
	req.SetSignatureMethod(SignatureMethodHMACSHA1)
	req.SetVersion(Version)
	req.Params.Set("roles", "Learner")

	_, err := req.GenerateSignature(secret)
	require.NoError(t, err)

	tampered := []struct {
		name   string
		method string
		rawURL string
		mutate func(url.Values)
	}{
		{"changed parameter value", "POST", rawURL, func(f url.Values) { f.Set("roles", "Instructor") }},
		{"changed method", "GET", rawURL, func(url.Values) {}},
		{"changed base url", "POST", "https://tool.example/other?foo=bar", func(url.Values) {}},
		{"changed query value", "POST", "https://tool.example/launch?foo=baz", func(url.Values) {}},
	}

	for _, tt := range tampered {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			for name, value := range req.Params {
				form.Set(name, value)
			}
			tt.mutate(form)

			ok, err := ValidateSignature(tt.method, tt.rawURL, form, secret)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestValidateSignatureMissingURL(t *testing.T) {
	_, err := ValidateSignature("POST", "", url.Values{"oauth_consumer_key": {"key123"}}, "secret1")

	assert.ErrorIs(t, err, ErrMissingURL)
}
