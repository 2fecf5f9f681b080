package in

import (
	"context"

	"github.com/AkiBarry/alias-proxy/internal/domain"
)

// PlannedEntry describes how a single mapping entry is turned into rules.
type PlannedEntry struct {
	Alias       string
	Target      string
	Kind        domain.TargetKind
	Destination string
}

// Plan is the outcome of loading, validating and building a mapping without
// writing anything.
type Plan struct {
	Entries  []PlannedEntry
	Document domain.Document
}

// GenerateService defines the contract for turning the mapping into the
// dynamic configuration document.
type GenerateService interface {
	// Plan loads and validates the mapping and builds the document in memory.
	Plan(ctx context.Context) (*Plan, error)

	// Generate runs Plan and writes the resulting document.
	Generate(ctx context.Context) (*Plan, error)
}
