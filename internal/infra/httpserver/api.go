package httpserver

import (
	"context"
	"net/http"
)

type Controller interface {
	AddRoutes(*http.ServeMux)
}

// Pinger is a dependency checked by /readyz.
type Pinger interface {
	Ping(ctx context.Context) error
}
