package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstitutes(t *testing.T) {
	t.Parallel()

	table := Institutes()

	assert.Equal(t, "institute", table.Name())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{
		"National Institute of Technology",
		"Indian Institute of Technology",
		"Assam University",
	}, table.Values())
	assert.Equal(t, "Assam University", table.At(2))
}

func TestStringTable_Immutable(t *testing.T) {
	t.Parallel()

	t.Run("constructor copies its input", func(t *testing.T) {
		t.Parallel()

		in := []string{"a", "b"}
		table := NewStringTable("t", in...)
		in[0] = "changed"

		assert.Equal(t, "a", table.At(0))
	})

	t.Run("Values returns a copy", func(t *testing.T) {
		t.Parallel()

		table := Institutes()
		values := table.Values()
		values[0] = "changed"

		assert.Equal(t, "National Institute of Technology", table.At(0))
		assert.Equal(t, "National Institute of Technology", Institutes().At(0))
	})

	t.Run("At panics out of range", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { _ = Institutes().At(3) })
	})
}
