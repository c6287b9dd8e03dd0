package browserkit

import (
	"net/http"
)

// Transport sends a single HTTP request. *http.Client satisfies it.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Transport = (*http.Client)(nil)

// TransportFunc adapts a function to Transport.
type TransportFunc func(req *http.Request) (*http.Response, error)

func (f TransportFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware wraps a Transport. Middlewares run in the order they were
// added to the client.
type Middleware func(next Transport) Transport

func chain(t Transport, mws []Middleware) Transport {
	for i := len(mws) - 1; i >= 0; i-- {
		t = mws[i](t)
	}
	return t
}
