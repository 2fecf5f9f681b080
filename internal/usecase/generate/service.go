// Package generate implements the dynamic configuration generation use case.
package generate

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/AkiBarry/alias-proxy/internal/boundaries/in"
	"github.com/AkiBarry/alias-proxy/internal/boundaries/out"
	"github.com/AkiBarry/alias-proxy/internal/domain"
	"github.com/AkiBarry/alias-proxy/pkg/validation"
)

var _ in.GenerateService = (*Service)(nil)

// Service implements the GenerateService interface.
type Service struct {
	source out.MappingSource
	writer out.DocumentWriter
	rules  Rules
}

// NewService creates a new generate service.
func NewService(source out.MappingSource, writer out.DocumentWriter, rules Rules) *Service {
	return &Service{
		source: source,
		writer: writer,
		rules:  rules,
	}
}

// Plan loads the mapping, validates every alias and builds the document.
// Nothing is written.
func (s *Service) Plan(ctx context.Context) (*in.Plan, error) {
	logger := log.FromContext(ctx).With("usecase", "Plan")

	mapping, err := s.source.Load(ctx)
	if err != nil {
		var loadErr *domain.LoadError
		if errors.As(err, &loadErr) {
			return nil, err
		}
		return nil, &domain.LoadError{Err: err}
	}
	logger.Debug("mapping loaded", "entries", len(mapping))

	// All aliases are checked before any rule is built.
	if alias, err := validation.FirstInvalidAlias(mapping.Aliases()); err != nil {
		return nil, &domain.ValidationError{Alias: alias, Err: err}
	}

	built := make([]EntryRules, 0, len(mapping))
	plan := &in.Plan{Entries: make([]in.PlannedEntry, 0, len(mapping))}
	for _, entry := range mapping {
		rules := s.rules.Build(entry)
		logger.Debug("entry classified",
			"alias", entry.Alias,
			"kind", rules.Kind,
			"destination", rules.Destination)

		built = append(built, rules)
		plan.Entries = append(plan.Entries, in.PlannedEntry{
			Alias:       entry.Alias,
			Target:      entry.Target,
			Kind:        rules.Kind,
			Destination: rules.Destination,
		})
	}
	plan.Document = Assemble(built)

	logger.Info("document assembled",
		"routers", len(plan.Document.Routers),
		"services", len(plan.Document.Services),
		"middlewares", len(plan.Document.Middlewares))

	return plan, nil
}

// Generate builds the document and writes it. Nothing is written when
// loading or validation fails.
func (s *Service) Generate(ctx context.Context) (*in.Plan, error) {
	logger := log.FromContext(ctx).With("usecase", "Generate")

	plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Write(ctx, plan.Document); err != nil {
		var writeErr *domain.WriteError
		if errors.As(err, &writeErr) {
			return nil, err
		}
		return nil, &domain.WriteError{Path: s.writer.Destination(), Err: err}
	}

	logger.Info("dynamic configuration written", "path", s.writer.Destination())
	return plan, nil
}
