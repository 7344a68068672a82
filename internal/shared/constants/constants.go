package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"
	// Identity headers injected by the upstream gateway. The engine trusts
	// them; authentication happens before traffic reaches it.
	HeaderXActor         = "X-Actor"
	HeaderXCallerIsAdmin = "X-Caller-Is-Admin"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyActor     = "actor"
	ContextKeyIsAdmin   = "is_admin"
	ContextKeyRequestID = "request_id"

	// Registration categories
	CategoryVisitor    = "visitor"
	CategoryContractor = "contractor"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
