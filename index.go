// index.go
//
// The "index" internal representation: looking a value's text up in a table
// of keywords and caching the index of the matching entry, so that a command
// resolving the same option word over and over pays for the string scan only
// once.
//
// Lookup semantics (all user-visible, none of them shortcuts):
//   - An exact match always wins and stops the scan.
//   - A non-empty proper prefix of an entry is an abbreviation. A unique
//     abbreviation resolves to that entry unless exact-only was requested;
//     two or more make the input ambiguous. The scan must keep going after
//     the first abbreviation, both to count further ones and because a later
//     exact match still overrides any number of them.
//   - Empty input never matches, even against an empty table entry.
//
// The cache is keyed on table *identity* and stride, not on table contents:
// a different Table holding identical strings must rescan. Tables are
// read-only once handed to a lookup; mutating one in place while values
// cache indexes into it is a caller error.

package tcl

import "strings"

// A Table is an ordered keyword table. Entries are laid out in a flat slice
// with a caller-chosen stride so that per-keyword records can be interleaved:
// entry i is entries[i*stride]. The slice end terminates the table; empty
// strings are legal entries. Entries must not repeat.
//
// The *Table pointer is the cache identity. Build one table per logical
// keyword set and keep it, typically in a package-level var.
type Table struct {
	entries []string

	scans int // slow-path scans performed, observable in tests
}

// NewTable builds a Table from keywords in resolution order.
func NewTable(entries ...string) *Table {
	return &Table{entries: entries}
}

// count returns the number of entries visible at the given stride.
func (t *Table) count(stride int) int {
	return (len(t.entries) + stride - 1) / stride
}

// at returns entry i at the given stride.
func (t *Table) at(stride, i int) string {
	return t.entries[i*stride]
}

// choices lists every entry at the given stride, in scan order.
func (t *Table) choices(stride int) []string {
	n := t.count(stride)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = t.at(stride, i)
	}
	return out
}

// indexRep is the cached result of a successful lookup.
type indexRep struct {
	table  *Table
	stride int
	index  int
}

// IndexType is the shared descriptor for index reps. Its SetFromAny always
// fails (the table is not recoverable from a generic value); conversion
// happens only through GetIndex and GetIndexFromStruct.
var IndexType Type = indexType{}

type indexType struct{}

func (indexType) Name() string       { return "index" }
func (indexType) FreeIntRep(rep any) {}

func (indexType) DupIntRep(rep any) any {
	cp := *rep.(*indexRep)
	return &cp
}

// UpdateString re-expands to the full table entry; no abbreviation is ever
// regenerated.
func (indexType) UpdateString(rep any) string {
	r := rep.(*indexRep)
	return r.table.at(r.stride, r.index)
}

func (indexType) SetFromAny(v *Value) error { return ErrIndexConversion }

// GetIndex looks up v's text in table, accepting unique abbreviations unless
// exact is set, and returns the index of the matching entry. On failure the
// returned error is a *LookupError carrying the standard message. The result
// is cached on v, so repeated lookups against the same table are constant
// time.
func GetIndex(v *Value, table *Table, label string, exact bool) (int, error) {
	// Checking the cache here skips the stride plumbing in the common case.
	if v.typ == IndexType {
		if r := v.intRep.(*indexRep); r.table == table && r.stride == 1 {
			return r.index, nil
		}
	}
	return GetIndexFromStruct(v, table, 1, label, exact)
}

// GetIndexFromStruct is GetIndex for tables whose keywords are interleaved
// with other per-entry strings: entry i lives at entries[i*stride]. The
// stride participates in cache validity, so the same Table consulted at two
// strides keeps two distinct lookups honest.
func GetIndexFromStruct(v *Value, table *Table, stride int, label string, exact bool) (int, error) {
	if stride < 1 {
		panic("tcl: GetIndexFromStruct stride must be >= 1")
	}

	if v.typ == IndexType {
		if r := v.intRep.(*indexRep); r.table == table && r.stride == stride {
			return r.index, nil
		}
	}

	key := v.String()
	index := -1
	numAbbrev := 0

	// Empty input is never a match, not even of an empty entry.
	if key != "" {
		table.scans++
		n := table.count(stride)
		for i := 0; i < n; i++ {
			entry := table.at(stride, i)
			if entry == key {
				index = i
				numAbbrev = 0
				break
			}
			if strings.HasPrefix(entry, key) {
				// Abbreviation. Keep scanning: a later entry may match
				// exactly, and a second abbreviation must be counted.
				numAbbrev++
				index = i
			}
		}
	}

	if index < 0 || (numAbbrev > 0 && (exact || numAbbrev != 1)) {
		kind := NoMatch
		if numAbbrev > 1 {
			kind = Ambiguous
		}
		return -1, &LookupError{Kind: kind, Label: label, Input: key, Choices: table.choices(stride)}
	}

	// Cache the result, reusing the existing rep allocation when v already
	// holds an index rep.
	if v.typ == IndexType {
		r := v.intRep.(*indexRep)
		r.table, r.stride, r.index = table, stride, index
	} else {
		v.SetIntRep(IndexType, &indexRep{table: table, stride: stride, index: index})
	}
	return index, nil
}
