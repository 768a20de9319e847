package pageroutes

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazy_loadsOnce(t *testing.T) {
	calls := 0
	c := Lazy(func() (templ.Component, error) {
		calls++
		return text("hello"), nil
	})
	assert.Equal(t, 0, calls, "must not load before first render")

	for range 3 {
		var sb strings.Builder
		require.NoError(t, c.Render(context.Background(), &sb))
		assert.Equal(t, "hello", sb.String())
	}
	assert.Equal(t, 1, calls)
}

func TestLazy_error(t *testing.T) {
	errLoad := errors.New("boom")
	calls := 0
	c := Lazy(func() (templ.Component, error) {
		calls++
		return nil, errLoad
	})
	for range 2 {
		assert.ErrorIs(t, c.Render(context.Background(), &strings.Builder{}), errLoad)
	}
	assert.Equal(t, 1, calls)
}

func TestLazy_nil(t *testing.T) {
	c := Lazy(func() (templ.Component, error) { return nil, nil })
	assert.Error(t, c.Render(context.Background(), &strings.Builder{}))
}
