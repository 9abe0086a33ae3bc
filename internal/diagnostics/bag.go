package diagnostics

import "sort"

// Bag accumulates CheckErrors across a checking pass, deduplicating by
// rendered message (same variant, same key payload fields, same location
// all collapse into the same string) per spec.md §7/§8's dedup
// requirement, and preserves first-seen order otherwise (spec.md §5
// "error reports preserve these orders").
type Bag struct {
	errs []CheckError
	seen map[string]bool
}

// NewBag returns an empty Bag.
func NewBag() *Bag {
	return &Bag{seen: make(map[string]bool)}
}

// Add appends err unless an identical error (same Error() text at the same
// location) was already recorded.
func (b *Bag) Add(err CheckError) {
	key := err.Error() + "@" + err.Loc().String()
	if b.seen[key] {
		return
	}
	b.seen[key] = true
	b.errs = append(b.errs, err)
}

// HasErrors reports whether any error has been recorded.
func (b *Bag) HasErrors() bool { return len(b.errs) > 0 }

// Len returns the number of distinct recorded errors.
func (b *Bag) Len() int { return len(b.errs) }

// Errors returns the recorded errors in first-seen order.
func (b *Bag) Errors() []CheckError {
	out := make([]CheckError, len(b.errs))
	copy(out, b.errs)
	return out
}

// SortByLocation returns the recorded errors ordered by location (useful
// for deterministic driver output); ties keep first-seen order.
func (b *Bag) SortByLocation() []CheckError {
	out := b.Errors()
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].Loc(), out[j].Loc()
		return li.OffsetStart < lj.OffsetStart
	})
	return out
}

// Render formats every recorded error as "file:line:col: message", one per
// line (spec.md §7 "Each error renders on its own line, prefixed by
// location"). path is the source file path to prefix; callers checking
// multiple files call Render once per file's Bag, or filter Errors() by
// location themselves for a combined report.
func (b *Bag) Render(path string) []string {
	lines := make([]string, 0, len(b.errs))
	for _, e := range b.errs {
		loc := e.Loc()
		lines = append(lines, path+":"+loc.String()+": "+e.Error())
	}
	return lines
}
