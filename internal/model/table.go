package model

// StringTable is an ordered, fixed-length sequence of strings.
// It is immutable: the backing array is never exposed to callers.
type StringTable struct {
	// name is the identifier of the array in reports (e.g. "institute").
	name string

	// values holds the strings in table order.
	values []string
}

// InstituteTableName is the array name used by Institutes.
const InstituteTableName = "institute"

// institutes is the literal content of the table returned by Institutes.
var institutes = [...]string{
	"National Institute of Technology",
	"Indian Institute of Technology",
	"Assam University",
}

// Institutes returns the fixed table of institute names.
func Institutes() StringTable {
	return NewStringTable(InstituteTableName, institutes[:]...)
}

// NewStringTable creates a StringTable with the given name and values.
// The values are copied, so later changes to the argument slice do not
// affect the table.
func NewStringTable(name string, values ...string) StringTable {
	v := make([]string, len(values))
	copy(v, values)
	return StringTable{name: name, values: v}
}

// Name returns the array name of the table.
func (t StringTable) Name() string {
	return t.name
}

// Len returns the number of entries in the table.
func (t StringTable) Len() int {
	return len(t.values)
}

// At returns the i-th (0-based) entry. It panics if i is out of range,
// like indexing a slice.
func (t StringTable) At(i int) string {
	return t.values[i]
}

// Values returns a copy of the entries in table order.
func (t StringTable) Values() []string {
	v := make([]string, len(t.values))
	copy(v, t.values)
	return v
}
