package out

import (
	"context"

	"github.com/AkiBarry/alias-proxy/internal/domain"
)

// DocumentWriter defines the contract for persisting the dynamic configuration.
type DocumentWriter interface {
	// Write replaces the destination with the serialized document.
	// Implementations return a *domain.WriteError on any failure and must not
	// leave a partially written destination behind.
	Write(ctx context.Context, doc domain.Document) error

	// Destination returns a human readable location of the written document.
	Destination() string
}
