package utils

// ContextKey is the type for request-scoped context values
type ContextKey string

// Context keys for request metadata carried into the business flows
const (
	RequestIDKey ContextKey = "request_id"
	IPAddressKey ContextKey = "ip_address"
	UserAgentKey ContextKey = "user_agent"
	EndpointKey  ContextKey = "endpoint"
)
