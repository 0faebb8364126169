package server

// HeaderAPIKey is the request header carrying the client API key.
const HeaderAPIKey = "X-API-Key"

// PublicPaths are reachable without an API key.
var PublicPaths = []string{
	"/healthz",
	"/version",
	"/metrics",
}

// Log and error messages
const (
	LogMsgAuthFailed   = "Authentication failed"
	ErrMsgUnauthorized = "Unauthorized"
)
