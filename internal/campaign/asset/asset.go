// Package asset identifies binary assets (images) referenced by campaign
// configuration.
package asset

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
)

// ID is the content digest of a binary asset, in lowercase hex.
type ID string

// FromBytes returns the ID of the given asset contents.
func FromBytes(data []byte) ID {
	sum := md5.Sum(data)
	return ID(hex.EncodeToString(sum[:]))
}

// IsZero reports whether id is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// Set is an unordered collection of asset IDs. The zero value is not usable;
// create sets with NewSet.
type Set map[ID]struct{}

// NewSet returns a set holding ids. Zero IDs are skipped.
func NewSet(ids ...ID) Set {
	s := make(Set, len(ids))
	s.AddAll(ids...)
	return s
}

// Add inserts id unless it is zero.
func (s Set) Add(id ID) {
	if id.IsZero() {
		return
	}
	s[id] = struct{}{}
}

// AddAll inserts every non-zero id.
func (s Set) AddAll(ids ...ID) {
	for _, id := range ids {
		s.Add(id)
	}
}

// Contains reports whether id is in the set.
func (s Set) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of IDs in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the IDs in ascending order.
func (s Set) Sorted() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether both sets hold the same IDs.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
