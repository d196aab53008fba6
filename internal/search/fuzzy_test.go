package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestName(t *testing.T) {
	names := []string{"Lewra Lason", "John Smith", "Priya Sharma"}

	t.Run("exact match", func(t *testing.T) {
		name, ok := closestName("lewra lason", names)
		assert.True(t, ok)
		assert.Equal(t, "Lewra Lason", name)
	})

	t.Run("tolerates trailing words", func(t *testing.T) {
		name, ok := closestName("lewra lasons profile", names)
		assert.True(t, ok)
		assert.Equal(t, "Lewra Lason", name)
	})

	t.Run("tolerates small typos", func(t *testing.T) {
		name, ok := closestName("jon smith", names)
		assert.True(t, ok)
		assert.Equal(t, "John Smith", name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		name, ok := closestName("PRIYA SHARMA", names)
		assert.True(t, ok)
		assert.Equal(t, "Priya Sharma", name)
	})

	t.Run("no match below cutoff", func(t *testing.T) {
		_, ok := closestName("nobody here", names)
		assert.False(t, ok)
	})

	t.Run("empty name list", func(t *testing.T) {
		_, ok := closestName("anyone", nil)
		assert.False(t, ok)
	})
}
