package model

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport_Institutes(t *testing.T) {
	t.Parallel()

	r := NewReport(Institutes())

	assert.Equal(t, InstituteTableName, r.TableName)
	assert.Equal(t, 3, r.ElementCount)
	assert.Equal(t, PointerSize, r.UnitSize)
	assert.Equal(t, r.ElementCount*r.UnitSize, r.TotalSize)
	assert.Equal(t, []int{33, 31, 17}, r.Lengths())
	assert.Equal(t, 81, r.ContentSize)

	require.Len(t, r.Entries, 3)
	assert.Equal(t, Entry{Index: 1, Text: "National Institute of Technology", Length: 33}, r.Entries[0])
	assert.Equal(t, Entry{Index: 2, Text: "Indian Institute of Technology", Length: 31}, r.Entries[1])
	assert.Equal(t, Entry{Index: 3, Text: "Assam University", Length: 17}, r.Entries[2])
}

func TestNewReport_LengthsFollowByteLength(t *testing.T) {
	t.Parallel()

	table := Institutes()
	r := NewReport(table)
	require.Len(t, r.Entries, table.Len())

	sum := 0
	for i, text := range table.Values() {
		want := len([]byte(text)) + 1
		assert.Equal(t, want, r.Entries[i].Length, "entry %d (%q)", i+1, text)
		assert.Equal(t, want, StoredLength(text))
		sum += want
	}
	assert.Equal(t, sum, r.ContentSize)
	assert.Equal(t, []int{33, 31, 17}, r.Lengths())
}

func TestNewReport_TotalSizeInvariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
	}{
		{name: "empty table", values: nil},
		{name: "single entry", values: []string{"a"}},
		{name: "empty string entry", values: []string{""}},
		{name: "multi-byte text", values: []string{"日本", "ü", "plain"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewReport(NewStringTable("t", tt.values...))

			assert.Equal(t, len(tt.values), r.ElementCount)
			assert.Equal(t, r.ElementCount*PointerSize, r.TotalSize)

			sum := 0
			for i, e := range r.Entries {
				assert.Equal(t, i+1, e.Index)
				assert.Equal(t, len(tt.values[i])+1, e.Length)
				sum += e.Length
			}
			assert.Equal(t, sum, r.ContentSize)
		})
	}
}

func TestNewReport_UnitSizeIgnoresContent(t *testing.T) {
	t.Parallel()

	short := NewReport(NewStringTable("t", "a"))
	long := NewReport(NewStringTable("t", string(make([]byte, 4096))))

	assert.Equal(t, short.UnitSize, long.UnitSize)
	assert.Equal(t, short.TotalSize, long.TotalSize)
}

func TestNewReport_Idempotent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewReport(Institutes()), NewReport(Institutes()))
}

func TestStoredLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{"National Institute of Technology", 33},
		{"Indian Institute of Technology", 31},
		{"Assam University", 17},
		{"", 1},
		{"é", 3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StoredLength(tt.in))
		})
	}
}

func TestPointerSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int(unsafe.Sizeof(uintptr(0))), PointerSize)
	assert.Contains(t, []int{4, 8}, PointerSize)
	assert.Equal(t, PointerSize*8, PointerBits())
}
