package mock

import (
	"context"

	"github.com/fwojciec/mdndoc"
)

var _ mdndoc.MimeService = (*MimeService)(nil)

// MimeService is a mock implementation of mdndoc.MimeService.
type MimeService struct {
	FindMimeFn func(ctx context.Context, ext string) (*mdndoc.MimeResult, error)
}

func (s *MimeService) FindMime(ctx context.Context, ext string) (*mdndoc.MimeResult, error) {
	return s.FindMimeFn(ctx, ext)
}
