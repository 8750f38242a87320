package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/mdndoc"
	"github.com/fwojciec/mdndoc/mock"
	mdnslog "github.com/fwojciec/mdndoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMimeService_FindMime(t *testing.T) {
	t.Parallel()

	t.Run("logs found entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MimeService{
			FindMimeFn: func(_ context.Context, ext string) (*mdndoc.MimeResult, error) {
				return &mdndoc.MimeResult{Mime: mdndoc.MimeEntry{Extension: "." + ext, TypeMime: "application/json"}}, nil
			},
		}

		svc := mdnslog.NewLoggingMimeService(inner, logger)
		result, err := svc.FindMime(context.Background(), "json")

		require.NoError(t, err)
		assert.Equal(t, "application/json", result.Mime.TypeMime)
		output := buf.String()
		assert.Contains(t, output, "find mime")
		assert.Contains(t, output, "ext=json")
		assert.Contains(t, output, "found=true")
	})

	t.Run("logs missing entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.MimeService{
			FindMimeFn: func(_ context.Context, _ string) (*mdndoc.MimeResult, error) {
				return nil, nil
			},
		}

		svc := mdnslog.NewLoggingMimeService(inner, logger)
		result, err := svc.FindMime(context.Background(), "doesnotexist")

		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Contains(t, buf.String(), "found=false")
	})
}
