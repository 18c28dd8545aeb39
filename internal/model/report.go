package model

// Report is the printable summary of a StringTable.
// Every field is derived from the table and the platform constants.
type Report struct {
	// TableName is the name of the measured array.
	TableName string `json:"table_name" yaml:"table_name"`

	// ElementCount is the number of entries in the table.
	ElementCount int `json:"element_count" yaml:"element_count"`

	// UnitSize is the size in bytes of one pointer to a string (PointerSize).
	UnitSize int `json:"unit_size" yaml:"unit_size"`

	// TotalSize is ElementCount * UnitSize. It covers the pointers only,
	// not the text they point to.
	TotalSize int `json:"total_size" yaml:"total_size"`

	// ContentSize is the sum of all entry lengths, terminators included.
	ContentSize int `json:"content_size" yaml:"content_size"`

	// Entries lists the strings in table order.
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Entry is one string of the table.
type Entry struct {
	// Index is the 1-based position in the table.
	Index int `json:"index" yaml:"index"`

	// Text is the string itself.
	Text string `json:"text" yaml:"text"`

	// Length is the byte length of Text plus TerminatorSize.
	Length int `json:"length" yaml:"length"`
}

// NewReport derives a Report from the given table.
func NewReport(table StringTable) *Report {
	r := &Report{
		TableName:    table.Name(),
		ElementCount: table.Len(),
		UnitSize:     PointerSize,
		Entries:      make([]Entry, 0, table.Len()),
	}
	r.TotalSize = r.ElementCount * r.UnitSize

	for i, text := range table.Values() {
		length := StoredLength(text)
		r.Entries = append(r.Entries, Entry{
			Index:  i + 1,
			Text:   text,
			Length: length,
		})
		r.ContentSize += length
	}

	return r
}

// StoredLength returns the number of bytes s occupies as a C string:
// its byte length plus the terminator.
func StoredLength(s string) int {
	return len(s) + TerminatorSize
}

// Lengths returns the entry lengths in table order.
func (r *Report) Lengths() []int {
	lengths := make([]int, len(r.Entries))
	for i, e := range r.Entries {
		lengths[i] = e.Length
	}
	return lengths
}
