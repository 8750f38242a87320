package mock

import (
	"context"

	"github.com/fwojciec/mdndoc"
)

var _ mdndoc.DefinitionService = (*DefinitionService)(nil)

// DefinitionService is a mock implementation of mdndoc.DefinitionService.
type DefinitionService struct {
	SearchDefinitionFn func(ctx context.Context, typ, method string) (*mdndoc.SearchOutcome, error)
	GetDefinitionFn    func(ctx context.Context, path string) (*mdndoc.Definition, error)
}

func (s *DefinitionService) SearchDefinition(ctx context.Context, typ, method string) (*mdndoc.SearchOutcome, error) {
	return s.SearchDefinitionFn(ctx, typ, method)
}

func (s *DefinitionService) GetDefinition(ctx context.Context, path string) (*mdndoc.Definition, error) {
	return s.GetDefinitionFn(ctx, path)
}
