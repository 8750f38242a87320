package mdndoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/mdndoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mdndoc.Errorf(mdndoc.ENOTFOUND, "no MIME type for %q", ".foo")

	assert.Equal(t, mdndoc.ENOTFOUND, mdndoc.ErrorCode(err))
	assert.Equal(t, "no MIME type for \".foo\"", mdndoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdndoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdndoc.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load page: %w", mdndoc.Errorf(mdndoc.EUNAVAILABLE, "HTTP 503"))

	assert.Equal(t, mdndoc.EUNAVAILABLE, mdndoc.ErrorCode(err))
	assert.Equal(t, "HTTP 503", mdndoc.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, mdndoc.EINTERNAL, mdndoc.ErrorCode(err))
	assert.Equal(t, "Internal error", mdndoc.ErrorMessage(err))
}
