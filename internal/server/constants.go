package server

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// MaxRequestBytes bounds request bodies. Screenshots arrive base64-encoded
// in JSON, so the limit is sized for images rather than plain API calls.
const MaxRequestBytes = 5 << 20

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}
