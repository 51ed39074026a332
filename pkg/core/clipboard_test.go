package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/tint/pkg/core"
)

func TestClipboard(t *testing.T) {
	cb := core.NewClipboard()
	assert.True(t, cb.IsEmpty())

	_, ok := cb.Paste()
	assert.False(t, ok)

	c1 := core.RGB(10, 20, 30)
	cb.Copy(c1)
	assert.False(t, cb.IsEmpty())

	for i := 0; i < 3; i++ {
		got, ok := cb.Paste()
		assert.True(t, ok)
		assert.Equal(t, c1, got)
	}

	c2 := core.RGB(40, 50, 60)
	cb.Copy(c2)
	got, ok := cb.Paste()
	assert.True(t, ok)
	assert.Equal(t, c2, got)
	assert.NotEqual(t, c1, got)
}
