package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWrapfPreservesCause(t *testing.T) {
	original := New("original")
	wrapped := Wrapf(original, "stage %d", 2)

	assert.Contains(t, wrapped.Error(), "stage 2")
	assert.True(t, Is(wrapped, original))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrFileNotFound,
		ErrParse,
		ErrUnsupportedExtension,
		ErrExtraction,
		ErrGeneration,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestClassifiersThroughWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		classify func(error) bool
	}{
		{"file not found", Wrapf(ErrFileNotFound, "reading %q", "/tmp/spec.yaml"), IsFileNotFound},
		{"parse", Wrap(fmt.Errorf("yaml: line 3: mapping values"), "x"), nil},
		{"parse wrapped", Wrap(ErrParse, "reading spec"), IsParse},
		{"unsupported extension", WithDetail(ErrUnsupportedExtension, "path"), IsUnsupportedExtension},
		{"extraction", Wrap(ErrExtraction, "operation GET /pets"), IsExtraction},
		{"generation", Wrapf(ErrGeneration, "backend %s", "rust"), IsGeneration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.classify == nil {
				// arbitrary non-sentinel errors classify as nothing
				assert.False(t, IsParse(tt.err))
				assert.False(t, IsFileNotFound(tt.err))
				return
			}
			assert.True(t, tt.classify(tt.err))
		})
	}
}

func TestClassifiersNilSafe(t *testing.T) {
	assert.False(t, IsFileNotFound(nil))
	assert.False(t, IsParse(nil))
	assert.False(t, IsUnsupportedExtension(nil))
	assert.False(t, IsExtraction(nil))
	assert.False(t, IsGeneration(nil))
}
