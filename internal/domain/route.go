package domain

// Router matches incoming requests by host and dispatches them to a service,
// optionally through middlewares.
type Router struct {
	Name        string
	Rule        string
	EntryPoints []string
	Service     string
	Middlewares []string
}

// Service is a load-balanced backend definition.
type Service struct {
	Name    string
	Servers []string
}

// RedirectMiddleware rewrites a matching request into a redirect response.
type RedirectMiddleware struct {
	Name        string
	Regex       string
	Replacement string
	Permanent   bool
}

// Document is the dynamic configuration consumed by the reverse proxy.
// Each section keeps the order of the mapping it was built from.
type Document struct {
	Routers     []Router
	Services    []Service
	Middlewares []RedirectMiddleware
}

// HasMiddlewares reports whether the middlewares section must be emitted.
func (d Document) HasMiddlewares() bool {
	return len(d.Middlewares) > 0
}
