package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	lo, hi := Page{}.Bounds(10)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 10, hi)

	lo, hi = Page{Limit: 3, Offset: 2}.Bounds(10)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)

	lo, hi = Page{Limit: 5, Offset: 8}.Bounds(10)
	assert.Equal(t, 8, lo)
	assert.Equal(t, 10, hi)

	lo, hi = Page{Limit: 5, Offset: 20}.Bounds(10)
	assert.Equal(t, 10, lo)
	assert.Equal(t, 10, hi)

	lo, hi = Page{Offset: -3}.Bounds(4)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 4, hi)
}
