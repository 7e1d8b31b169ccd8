// value.go
//
// Dual-representation values.
//
// A Value carries up to two representations of the same datum: a canonical
// string, and a cached internal representation produced by some earlier
// interpretation of that string (for example a resolved keyword-table index,
// see index.go). Either may be absent, never both. The string is the source
// of truth for re-interpretation; the internal rep is a cache that makes
// repeated interpretation cheap.
//
// Every internal rep is owned by exactly one Type descriptor, and all
// lifecycle operations on the rep (free, duplicate, re-stringify, convert)
// go through that descriptor. The Value itself never inspects a rep's
// contents, which keeps this file agnostic of how many interpretation kinds
// exist. Replacing a rep with one of a different kind ("shimmering") frees
// the old rep through the old descriptor first.
//
// Values are single-owner: concurrent mutation of the same cell is a caller
// error and must be excluded by an external lock.

package tcl

// A Type describes one kind of cached internal representation. Exactly one
// shared, immutable Type exists per kind; Values reference it, they never
// copy it.
type Type interface {
	// Name identifies the kind in diagnostics.
	Name() string

	// FreeIntRep releases any resources held by rep. Called when the rep is
	// replaced or discarded.
	FreeIntRep(rep any)

	// DupIntRep returns an independent copy of rep for a duplicated Value.
	DupIntRep(rep any) any

	// UpdateString regenerates the canonical string from rep. Called only
	// when a Value's string has been invalidated.
	UpdateString(rep any) string

	// SetFromAny interprets v's current contents as this kind and installs
	// the resulting rep on v. Kinds that need outside context to convert
	// (the index kind does) return an error unconditionally.
	SetFromAny(v *Value) error
}

// Value is the universal carrier handed between the interpreter core and
// command implementations.
type Value struct {
	bytes    string
	hasBytes bool
	typ      Type
	intRep   any
}

// NewValue returns a fresh Value holding s and no internal rep.
func NewValue(s string) *Value {
	return &Value{bytes: s, hasBytes: true}
}

// String returns the canonical string, regenerating it from the internal rep
// if it was invalidated. Panics if the Value has neither representation;
// that state is a caller bug, not a reachable runtime condition.
func (v *Value) String() string {
	if !v.hasBytes {
		if v.typ == nil {
			panic("tcl: value has no string and no internal representation")
		}
		v.bytes = v.typ.UpdateString(v.intRep)
		v.hasBytes = true
	}
	return v.bytes
}

// HasString reports whether the canonical string is currently materialized.
func (v *Value) HasString() bool { return v.hasBytes }

// Type returns the descriptor of the cached internal rep, or nil.
func (v *Value) Type() Type { return v.typ }

// IntRep returns the cached internal rep, or nil. The caller must check
// Type before interpreting it.
func (v *Value) IntRep() any { return v.intRep }

// SetString replaces the Value's contents with s, discarding any cached
// internal rep through its descriptor.
func (v *Value) SetString(s string) {
	v.FreeIntRep()
	v.bytes = s
	v.hasBytes = true
}

// SetIntRep installs (t, rep) as the Value's internal rep. A previously held
// rep is freed through its own descriptor first. The canonical string is left
// alone; callers that changed the datum rather than reinterpreted it must
// Invalidate separately.
func (v *Value) SetIntRep(t Type, rep any) {
	if v.typ != nil {
		v.typ.FreeIntRep(v.intRep)
	}
	v.typ = t
	v.intRep = rep
}

// FreeIntRep discards the internal rep, if any, through its descriptor.
func (v *Value) FreeIntRep() {
	if v.typ == nil {
		return
	}
	v.typ.FreeIntRep(v.intRep)
	v.typ = nil
	v.intRep = nil
}

// HasIntRep reports whether the Value caches a rep of kind t that also
// satisfies match. A nil match accepts any rep of that kind. This lets a
// resolver test cache reusability without touching rep internals.
func (v *Value) HasIntRep(t Type, match func(rep any) bool) bool {
	if v.typ != t {
		return false
	}
	return match == nil || match(v.intRep)
}

// Invalidate drops the canonical string so the next String call regenerates
// it from the internal rep. The caller must ensure an internal rep exists.
func (v *Value) Invalidate() {
	v.bytes = ""
	v.hasBytes = false
}

// Dup returns an independent copy of v. The internal rep, if any, is copied
// through its descriptor.
func (v *Value) Dup() *Value {
	d := &Value{bytes: v.bytes, hasBytes: v.hasBytes}
	if v.typ != nil {
		d.typ = v.typ
		d.intRep = v.typ.DupIntRep(v.intRep)
	}
	return d
}

// ConvertToType forces v to carry an internal rep of kind t, interpreting
// the current contents via t.SetFromAny. A no-op when v already holds that
// kind.
func (v *Value) ConvertToType(t Type) error {
	if v.typ == t {
		return nil
	}
	return t.SetFromAny(v)
}
