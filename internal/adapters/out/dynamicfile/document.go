package dynamicfile

import (
	"gopkg.in/yaml.v3"

	"github.com/AkiBarry/alias-proxy/internal/domain"
)

// dynamicConfig is the on-disk representation of a domain.Document in the
// reverse proxy file provider format.
type dynamicConfig struct {
	HTTP httpConfig `yaml:"http"`
}

type httpConfig struct {
	Routers     orderedMap[router]     `yaml:"routers"`
	Services    orderedMap[service]    `yaml:"services"`
	Middlewares orderedMap[middleware] `yaml:"middlewares,omitempty"`
}

type router struct {
	Rule        string   `yaml:"rule"`
	EntryPoints []string `yaml:"entryPoints"`
	Service     string   `yaml:"service"`
	Middlewares []string `yaml:"middlewares,omitempty"`
}

type service struct {
	LoadBalancer loadBalancer `yaml:"loadBalancer"`
}

type loadBalancer struct {
	Servers []server `yaml:"servers"`
}

type server struct {
	URL string `yaml:"url"`
}

type middleware struct {
	RedirectRegex redirectRegex `yaml:"redirectRegex"`
}

type redirectRegex struct {
	Regex       string `yaml:"regex"`
	Replacement string `yaml:"replacement"`
	Permanent   bool   `yaml:"permanent"`
}

type namedValue[T any] struct {
	name  string
	value T
}

// orderedMap is a YAML mapping emitted in insertion order; yaml.v3 sorts
// the keys of Go maps.
type orderedMap[T any] []namedValue[T]

// MarshalYAML implements yaml.Marshaler.
func (m orderedMap[T]) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range m {
		var value yaml.Node
		if err := value.Encode(entry.value); err != nil {
			return nil, err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.name}
		node.Content = append(node.Content, key, &value)
	}
	return node, nil
}

// fromDocument converts the domain document to its file representation.
func fromDocument(doc domain.Document) dynamicConfig {
	var cfg dynamicConfig

	cfg.HTTP.Routers = make(orderedMap[router], 0, len(doc.Routers))
	for _, r := range doc.Routers {
		cfg.HTTP.Routers = append(cfg.HTTP.Routers, namedValue[router]{
			name: r.Name,
			value: router{
				Rule:        r.Rule,
				EntryPoints: r.EntryPoints,
				Service:     r.Service,
				Middlewares: r.Middlewares,
			},
		})
	}

	cfg.HTTP.Services = make(orderedMap[service], 0, len(doc.Services))
	for _, s := range doc.Services {
		servers := make([]server, 0, len(s.Servers))
		for _, url := range s.Servers {
			servers = append(servers, server{URL: url})
		}
		cfg.HTTP.Services = append(cfg.HTTP.Services, namedValue[service]{
			name:  s.Name,
			value: service{LoadBalancer: loadBalancer{Servers: servers}},
		})
	}

	for _, m := range doc.Middlewares {
		cfg.HTTP.Middlewares = append(cfg.HTTP.Middlewares, namedValue[middleware]{
			name: m.Name,
			value: middleware{RedirectRegex: redirectRegex{
				Regex:       m.Regex,
				Replacement: m.Replacement,
				Permanent:   m.Permanent,
			}},
		})
	}

	return cfg
}
