// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// NameTable is the dense, 1-based asset-index <-> asset-name bijection
// shared by the container's asset-index fields and the property codec's
// name references. Entries are append-only during writing: adding a name
// already present returns its existing index.
type NameTable struct {
	byIndex map[uint32]string
	byName  map[string]uint32
}

// NewNameTable returns an empty name table.
func NewNameTable() *NameTable {
	return &NameTable{byIndex: map[uint32]string{}, byName: map[string]uint32{}}
}

// Name returns the name registered at index, if any.
func (t *NameTable) Name(index uint32) (string, bool) {
	n, ok := t.byIndex[index]
	return n, ok
}

// Index returns the index registered for name, if any.
func (t *NameTable) Index(name string) (uint32, bool) {
	i, ok := t.byName[name]
	return i, ok
}

// Add registers name if it is not already present and returns its index.
func (t *NameTable) Add(name string) uint32 {
	if i, ok := t.byName[name]; ok {
		return i
	}
	i := uint32(len(t.byIndex) + 1)
	t.byIndex[i] = name
	t.byName[name] = i
	return i
}

// Len returns the number of registered names.
func (t *NameTable) Len() int { return len(t.byIndex) }

// Clone returns an independent copy, used to seed a WriteContext's table
// from the table a file was parsed with so that byte-exact round-trip
// writing only appends names genuinely new to the edited Map.
func (t *NameTable) Clone() *NameTable {
	c := NewNameTable()
	for i, n := range t.byIndex {
		c.byIndex[i] = n
		c.byName[n] = i
	}
	return c
}

// ParseNameTable reads the container-level asset name table: a 4-byte
// compression marker FourCC, a u32 count, then count entries iterated from
// count down to 1, each a short string name followed by a u32 check value
// that must equal its iteration index.
func (s *Stream) ParseNameTable() (*NameTable, string, error) {
	marker, err := s.ReadFourCC()
	if err != nil {
		return nil, "", err
	}
	count, err := s.ReadUint32()
	if err != nil {
		return nil, "", err
	}

	t := NewNameTable()
	for i := int(count); i >= 1; i-- {
		name, err := s.ReadString()
		if err != nil {
			return nil, "", err
		}
		idx, err := s.ReadUint32()
		if err != nil {
			return nil, "", err
		}
		if idx != uint32(i) {
			return nil, "", ErrAssetIndexMismatch
		}
		t.byIndex[idx] = name
		t.byName[name] = idx
	}
	return t, marker, nil
}

// WriteNameTable writes the container-level asset name table in the same
// count-down iteration order it was read in.
func (s *Stream) WriteNameTable(marker string, t *NameTable) {
	s.WriteFourCC(marker)
	s.WriteUint32(uint32(t.Len()))
	for i := t.Len(); i >= 1; i-- {
		name := t.byIndex[uint32(i)]
		s.WriteString(name)
		s.WriteUint32(uint32(i))
	}
}
