package constant

const (
	ContextKeyRequestID = "requestId"

	RequestIDHeader = "X-Dashboard-Request-ID"
)
