package generate

import (
	"fmt"
	"strings"

	"github.com/AkiBarry/alias-proxy/internal/domain"
)

const (
	// DefaultEntryPoint is the plaintext listener every router is bound to.
	DefaultEntryPoint = "web"

	// DefaultGatewayHost is the hostname a container uses to reach its host.
	DefaultGatewayHost = "host.docker.internal"

	// RedirectRegex matches any plaintext request and captures path and query.
	RedirectRegex = `^http://[^/]+(.*)`

	// NoopServiceURL backs redirect-only routers. The redirect middleware
	// always answers first so it is never reached.
	NoopServiceURL = "http://127.0.0.1"

	noopSuffix     = "-noop"
	redirectSuffix = "-redirect"
)

// Rules builds routers, services and middlewares for mapping entries.
// A Rules value is immutable and its methods are pure.
type Rules struct {
	EntryPoint  string
	GatewayHost string
}

// DefaultRules returns Rules bound to the default entry point and gateway host.
func DefaultRules() Rules {
	return Rules{EntryPoint: DefaultEntryPoint, GatewayHost: DefaultGatewayHost}
}

// EntryRules holds everything generated for one mapping entry.
// Middleware is nil for local entries. Destination is the backend URL for
// local entries and the redirect target for external ones.
type EntryRules struct {
	Kind        domain.TargetKind
	Destination string
	Router      domain.Router
	Service     domain.Service
	Middleware  *domain.RedirectMiddleware
}

// Build classifies the entry target and builds the matching rules.
func (r Rules) Build(entry domain.Entry) EntryRules {
	if domain.ClassifyTarget(entry.Target) == domain.TargetLocal {
		router, service := r.BuildLocalRule(entry.Alias, entry.Target)
		return EntryRules{
			Kind:        domain.TargetLocal,
			Destination: service.Servers[0],
			Router:      router,
			Service:     service,
		}
	}

	router, service, middleware := r.BuildExternalRule(entry.Alias, entry.Target)
	return EntryRules{
		Kind:        domain.TargetExternal,
		Destination: RedirectURL(entry.Target),
		Router:      router,
		Service:     service,
		Middleware:  &middleware,
	}
}

// BuildLocalRule proxies alias to a process on the host machine. Every
// loopback address and hostname in target is replaced by the gateway host.
func (r Rules) BuildLocalRule(alias, target string) (domain.Router, domain.Service) {
	router := domain.Router{
		Name:        alias,
		Rule:        HostRule(alias),
		EntryPoints: []string{r.EntryPoint},
		Service:     alias,
	}
	service := domain.Service{
		Name:    alias,
		Servers: []string{"http://" + r.GatewayAddress(target)},
	}
	return router, service
}

// BuildExternalRule redirects alias to a third-party destination through a
// temporary regex redirect.
func (r Rules) BuildExternalRule(alias, target string) (domain.Router, domain.Service, domain.RedirectMiddleware) {
	middleware := domain.RedirectMiddleware{
		Name:        alias + redirectSuffix,
		Regex:       RedirectRegex,
		Replacement: RedirectURL(target) + "$1",
		Permanent:   false,
	}
	service := domain.Service{
		Name:    alias + noopSuffix,
		Servers: []string{NoopServiceURL},
	}
	router := domain.Router{
		Name:        alias,
		Rule:        HostRule(alias),
		EntryPoints: []string{r.EntryPoint},
		Service:     service.Name,
		Middlewares: []string{middleware.Name},
	}
	return router, service, middleware
}

// GatewayAddress rewrites every loopback form in target to the gateway host.
// The whole string is rewritten, not only its host part.
func (r Rules) GatewayAddress(target string) string {
	replacer := strings.NewReplacer(
		domain.LoopbackAddress, r.GatewayHost,
		domain.LoopbackHostname, r.GatewayHost,
	)
	return replacer.Replace(target)
}

// RedirectURL keeps an explicit http or https scheme and upgrades
// scheme-less targets to https.
func RedirectURL(target string) string {
	if domain.HasExplicitScheme(target) {
		return target
	}
	return "https://" + target
}

// HostRule returns the router rule matching requests for host.
func HostRule(host string) string {
	return fmt.Sprintf("Host(`%s`)", host)
}
