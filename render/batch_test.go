package render_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alex-Citeroni/qr-code-generator/encoder"
	"github.com/Alex-Citeroni/qr-code-generator/render"
)

func TestBatch(t *testing.T) {
	payloads := make([]string, 23)
	for i := range payloads {
		payloads[i] = fmt.Sprintf("https://example.com/item/%d", i)
	}

	codes, err := render.Batch(encoder.New(), payloads, render.WithScale(4))
	require.NoError(t, err)
	require.Len(t, codes, len(payloads))

	for i, rc := range codes {
		require.NotNil(t, rc, "code %d", i)
		assert.Equal(t, rc.Image.Bounds().Dx(), rc.SidePixels)
	}

	// Order matches input order regardless of completion order.
	single, err := render.Render(mustEncode(t, payloads[7]), render.WithScale(4))
	require.NoError(t, err)
	assert.Equal(t, single.Image.Pix, codes[7].Image.Pix)
}

func TestBatch_abortsWholeRun(t *testing.T) {
	payloads := []string{
		"https://example.com/ok",
		strings.Repeat("x", 2000), // over level-H capacity
		"https://example.com/also-ok",
	}

	codes, err := render.Batch(encoder.New(), payloads)
	require.Error(t, err)
	assert.True(t, errors.Is(err, encoder.ErrEncoding))
	assert.Nil(t, codes, "a failed batch yields no partial result")
}

func TestBatch_empty(t *testing.T) {
	codes, err := render.Batch(encoder.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, codes)
}
