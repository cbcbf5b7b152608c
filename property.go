// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// AssetPropertyType is the closed set of property value kinds; the integer
// value is also the wire type tag.
type AssetPropertyType uint8

// Property type tags, per the container's property key encoding.
const (
	PropertyBool          AssetPropertyType = 0
	PropertyInt32         AssetPropertyType = 1
	PropertyReal          AssetPropertyType = 2
	PropertyAsciiString   AssetPropertyType = 3
	PropertyUnicodeString AssetPropertyType = 4
	PropertyUnknown       AssetPropertyType = 5
)

// Property is a single typed, named value. Value holds a bool, int32,
// float32, or string depending on Type.
type Property struct {
	Name  string
	Type  AssetPropertyType
	Value interface{}
}

// PropertyKey is a (type, name-index) pair referring into the asset-name
// table, used both for named properties and for embedded object/script
// references (e.g. a faction name, a BuildList's faction_name_property).
type PropertyKey struct {
	Type      AssetPropertyType
	NameIndex uint32
	Name      string
}

// PropertyList is an order-preserving, name-deduplicated collection of
// Properties. Insertion order must be preserved so that a consumer that
// round-trips a parsed map without reordering properties reproduces the
// original byte stream.
type PropertyList struct {
	items []Property
	index map[string]int
}

// NewPropertyList returns an empty property list.
func NewPropertyList() *PropertyList {
	return &PropertyList{index: map[string]int{}}
}

// Add appends prop, returning ErrDuplicateProperty if its name is already
// present.
func (p *PropertyList) Add(prop Property) error {
	if _, ok := p.index[prop.Name]; ok {
		return ErrDuplicateProperty
	}
	p.index[prop.Name] = len(p.items)
	p.items = append(p.items, prop)
	return nil
}

// Get returns the property named name, if present.
func (p *PropertyList) Get(name string) (Property, bool) {
	i, ok := p.index[name]
	if !ok {
		return Property{}, false
	}
	return p.items[i], true
}

// Items returns the properties in insertion (== original file) order.
func (p *PropertyList) Items() []Property { return p.items }

// Len returns the number of properties in the list.
func (p *PropertyList) Len() int { return len(p.items) }
