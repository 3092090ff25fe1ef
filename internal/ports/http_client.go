package ports

import "context"

// HTTPStatusCode is the status code of an HTTP response.
type HTTPStatusCode int

// Status codes the sign-in flow distinguishes or tests against.
const (
	StatusOK           HTTPStatusCode = 200
	StatusNoContent    HTTPStatusCode = 204
	StatusBadRequest   HTTPStatusCode = 400
	StatusUnauthorized HTTPStatusCode = 401
	StatusForbidden    HTTPStatusCode = 403
	StatusNotFound     HTTPStatusCode = 404
	StatusServerError  HTTPStatusCode = 500
)

// HTTPPostParams describes a single POST request.
type HTTPPostParams[B any] struct {
	// URL is the absolute request URL
	URL string

	// Body is serialized as the request payload
	Body B
}

// HTTPResponse is the transport-neutral view of a response.
type HTTPResponse[R any] struct {
	StatusCode HTTPStatusCode
	Body       R
}

// HTTPPostClient sends POST requests on behalf of the application layer.
// Implementations must surface the status code and body of every response
// they receive, including non-2xx ones; only failures with no response at all
// are returned as errors.
type HTTPPostClient[B, R any] interface {
	Post(ctx context.Context, params HTTPPostParams[B]) (HTTPResponse[R], error)
}
