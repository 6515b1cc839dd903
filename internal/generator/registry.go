// Package generator assembles encoded input files into the two
// generated C++ documents: a header declaring the embedded-file
// registry and a body defining the literal data behind it.
package generator

import (
	"errors"
	"fmt"
)

// Error definitions for registry assembly.
var (
	// ErrDuplicateName is returned in strict mode when two inputs share
	// a display name.
	ErrDuplicateName = errors.New("duplicate display name")

	// ErrNameNotFound is returned by MustGet for names absent from the
	// registry.
	ErrNameNotFound = errors.New("embedded file not found")

	// ErrVerifyMismatch indicates an encoded literal failed the decode
	// self-check.
	ErrVerifyMismatch = errors.New("encoded literal does not round-trip")
)

// Entry is one embedded file: the discovered path, the display name it
// is retrievable by, its derived (and disambiguated) identifier, and
// the encoded literal with its decoded length.
type Entry struct {
	Path        string
	DisplayName string
	Identifier  string
	Literal     string
	Size        int64
}

// Registry is the ordered, immutable collection of entries assembled
// from one invocation. Entries keep discovery order; the name index
// follows the generated map's last-write-wins semantics, so for
// duplicate display names it points at the later entry.
type Registry struct {
	entries []Entry
	byName  map[string]int
}

// Len returns the number of embedded files, including entries shadowed
// by a duplicate display name. This is the count the generated
// embeddedFileCount constant reports.
func (r *Registry) Len() int { return len(r.entries) }

// Entries returns the entries in discovery order. The returned slice
// must not be modified.
func (r *Registry) Entries() []Entry { return r.entries }

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// MustGet returns the entry registered under name, or ErrNameNotFound.
// A missing name is never reported as an empty entry so that "file
// missing" cannot be confused with "file present but empty".
func (r *Registry) MustGet(name string) (Entry, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrNameNotFound, name)
	}
	return e, nil
}

// UniqueNames returns the number of distinct display names.
func (r *Registry) UniqueNames() int { return len(r.byName) }
