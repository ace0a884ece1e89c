package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID   contextKey = "user_id"
	ContextKeyUsername contextKey = "username"
)

const (
	RequestParamID   = "id"
	RequestMaxMemory = 1 << 20 // 1 MB
)

const (
	FieldModifiedAt = "modified_at"
)

const (
	PqErrorCodeUniqueViolation = "23505"
)

const (
	DisplayDateFormat = "Jan 2, 2006 15:04"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelMiddlewareScopeName = "middleware"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON           = "application/json"
	ContentTypeHTML           = "text/html; charset=utf-8"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

// Messages shown to the user on re-rendered pages.
const (
	MessageLoginFirst         = "You need to log in first!"
	MessageInvalidRecord      = "No records returned - invalid record or user id"
	MessageInvalidValues      = "Invalid values entered - try again"
	MessagePasswordMismatch   = "Passwords did not match"
	MessageUsernameTaken      = "That username already exists - please choose another"
	MessageLoginMismatch      = "Username and password did not match"
	MessageSomethingWentWrong = "Something went wrong - please try again"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeySession   = "session"
	CacheKeyRateLimit = "limiter"
)

const (
	Empty = ""
)
