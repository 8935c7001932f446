package lti

// Reserved OAuth parameter names carried by LTI 1.x launches and callbacks.
const (
	ConsumerKeyParameter     = "oauth_consumer_key"
	NonceParameter           = "oauth_nonce"
	TimestampParameter       = "oauth_timestamp"
	SignatureMethodParameter = "oauth_signature_method"
	SignatureParameter       = "oauth_signature"
	VersionParameter         = "oauth_version"
	CallbackParameter        = "oauth_callback"
	BodyHashParameter        = "oauth_body_hash"
)

// Version is the OAuth protocol version sent with every signed request.
const Version = "1.0"

// CustomPrefix and ExtensionPrefix mark the caller-defined parameters of a
// launch. Only names carrying one of these two prefixes belong to the
// custom-parameter view; every other name is invisible to it.
const (
	CustomPrefix    = "custom_"
	ExtensionPrefix = "_ext"
)

// Supported values for oauth_signature_method. HMAC-SHA1 is the method the
// LTI 1.x specification expects and the default when none is set.
const (
	SignatureMethodHMACSHA1   = "HMAC-SHA1"
	SignatureMethodHMACSHA256 = "HMAC-SHA256"
	SignatureMethodHMACSHA384 = "HMAC-SHA384"
	SignatureMethodHMACSHA512 = "HMAC-SHA512"
)
