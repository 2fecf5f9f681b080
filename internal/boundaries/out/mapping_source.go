package out

import (
	"context"

	"github.com/AkiBarry/alias-proxy/internal/domain"
)

// MappingSource defines the contract for reading the alias -> target mapping.
type MappingSource interface {
	// Load reads the mapping and returns its entries in source order.
	// Implementations return a *domain.LoadError on any failure.
	Load(ctx context.Context) (domain.Mapping, error)
}
