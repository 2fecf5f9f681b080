package generate

import "github.com/AkiBarry/alias-proxy/internal/domain"

// Assemble merges per-entry rules into a single document. Every section keeps
// the order of entries; generated names derive from unique aliases so they
// never collide.
func Assemble(entries []EntryRules) domain.Document {
	doc := domain.Document{
		Routers:  make([]domain.Router, 0, len(entries)),
		Services: make([]domain.Service, 0, len(entries)),
	}
	for _, e := range entries {
		doc.Routers = append(doc.Routers, e.Router)
		doc.Services = append(doc.Services, e.Service)
		if e.Middleware != nil {
			doc.Middlewares = append(doc.Middlewares, *e.Middleware)
		}
	}
	return doc
}
