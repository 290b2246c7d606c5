// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package fits

// Identity keywords consulted by the diff engine. KeyVersion is the unit's
// declared version; KeyKind its declared extension kind tag.
const (
	KeyVersion = "EXTVER"
	KeyKind    = "XTENSION"
)

// Unit is one self-contained section of a container: a header plus at most
// one data block. Exactly one of Image, Table, or Raw is set when the unit
// carries data; all three are nil/empty for a headers-only unit.
type Unit struct {
	Name   string
	Header *Header
	Image  *Image
	Table  *Table
	Raw    []byte
}

// HasData reports whether the unit carries any data block.
func (u *Unit) HasData() bool {
	return u.Image != nil || u.Table != nil || len(u.Raw) > 0
}

// IsImage reports whether the unit's data is an N-dimensional array.
func (u *Unit) IsImage() bool { return u.Image != nil }

// IsTable reports whether the unit's data is a record table.
func (u *Unit) IsTable() bool { return u.Table != nil }

// Version returns the unit's declared version identity (the first EXTVER
// card value), or nil when absent.
func (u *Unit) Version() any {
	if u.Header == nil {
		return nil
	}
	return u.Header.Value(KeyVersion)
}

// Kind returns the unit's declared kind tag (the first XTENSION card value),
// or nil when absent.
func (u *Unit) Kind() any {
	if u.Header == nil {
		return nil
	}
	return u.Header.Value(KeyKind)
}

// File is an ordered sequence of units plus a human-readable source
// identifier used in reports. The file owns its units and is read-only for
// the duration of a comparison.
type File struct {
	Source string
	Units  []*Unit
}
