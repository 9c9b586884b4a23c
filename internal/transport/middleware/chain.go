package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws outermost first: Chain(a, b)(h) is a(b(h)).
// Nil stages are dropped so optional middleware can be listed inline.
func Chain(mws ...Middleware) Middleware {
	stages := make([]Middleware, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			stages = append(stages, mw)
		}
	}
	return func(h http.Handler) http.Handler {
		for i := len(stages) - 1; i >= 0; i-- {
			h = stages[i](h)
		}
		return h
	}
}
