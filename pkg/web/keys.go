package web

type contextKey string

// requestIDKey carries the request ID through the request context.
const requestIDKey = contextKey("requestID")
