package marc21

// Diagnostic records one recovered decode problem: which directory entry
// it came from, the entry's tag, the absolute byte offset in the record
// buffer at which the field's bytes start, and the error itself.
type Diagnostic struct {
	Entry  int
	Tag    string
	Offset int
	Err    error
}

// Report is the ordered sequence of problems recovered while decoding one
// record. Leader and directory errors abort the decode and never reach a
// Report; field-level errors are demoted to Malformed fields and recorded
// here, so nothing is dropped silently.
type Report []Diagnostic

// Len returns the number of recorded diagnostics.
func (r Report) Len() int { return len(r) }

// ByEntry returns the diagnostic for the given directory entry index, or
// nil if that entry decoded cleanly.
func (r Report) ByEntry(entry int) *Diagnostic {
	for i := range r {
		if r[i].Entry == entry {
			return &r[i]
		}
	}
	return nil
}
