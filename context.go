// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import (
	"fmt"

	"github.com/saferwall/sagemap/log"
)

// AssetHeader is the per-asset header every asset codec reads or writes
// through its scoped ReadAsset/WriteAsset helper.
type AssetHeader struct {
	Version  uint16
	DataSize uint32
	Start    int
	End      int
}

// ParseContext bundles the stream, the shared asset-name table, and a
// logger, and provides the scoped per-asset header discipline used by
// every asset codec.
type ParseContext struct {
	Stream *Stream
	Names  *NameTable
	Logger *log.Helper

	// HasAssetList records whether an AssetList asset has been seen yet;
	// SidesList and BuildLists dispatch on it (spec §4.6.1).
	HasAssetList bool
	// HeightMap is the most recently parsed HeightMapData, required by
	// BlendTileData for its grid dimensions.
	HeightMap *HeightMapData
}

// NewParseContext constructs a ParseContext over stream, seeded with names.
func NewParseContext(stream *Stream, names *NameTable, logger *log.Helper) *ParseContext {
	if logger == nil {
		logger = log.NewHelper(nil)
	}
	return &ParseContext{Stream: stream, Names: names, Logger: logger}
}

// ReadAssetHeader reads the u16 version + u32 datasize pair that precedes
// every asset body.
func (c *ParseContext) ReadAssetHeader() (AssetHeader, error) {
	version, err := c.Stream.ReadUint16()
	if err != nil {
		return AssetHeader{}, err
	}
	dataSize, err := c.Stream.ReadUint32()
	if err != nil {
		return AssetHeader{}, err
	}
	start := c.Stream.Tell()
	return AssetHeader{Version: version, DataSize: dataSize, Start: start, End: start + int(dataSize)}, nil
}

// ReadAsset reads an asset header, invokes body to parse the asset's
// fields, then enforces that body consumed exactly header.DataSize bytes.
// It mirrors the original format's read_asset() scoped context manager.
func (c *ParseContext) ReadAsset(name string, body func(h AssetHeader) error) (AssetHeader, error) {
	h, err := c.ReadAssetHeader()
	if err != nil {
		return h, fmt.Errorf("%s: reading asset header at offset %d: %w", name, c.Stream.Tell(), err)
	}
	if err := body(h); err != nil {
		return h, fmt.Errorf("%s at offset %d: %w", name, c.Stream.Tell(), err)
	}
	got := c.Stream.Tell() - h.Start
	if got != int(h.DataSize) {
		return h, fmt.Errorf("%s at offset %d: %w: expected %d bytes, read %d", name, c.Stream.Tell(), ErrDataSizeMismatch, h.DataSize, got)
	}
	return h, nil
}

// ParseAssetName reads a u32 asset-index and resolves it through Names.
func (c *ParseContext) ParseAssetName() (string, error) {
	idx, err := c.Stream.ReadUint32()
	if err != nil {
		return "", err
	}
	name, ok := c.Names.Name(idx)
	if !ok {
		return "", fmt.Errorf("%w: index %d", ErrUnknownAssetIndex, idx)
	}
	return name, nil
}

// ParsePropertyKey reads a (type tag, u24 name-index) pair and resolves the
// name through Names; an unresolved index yields an empty name rather than
// an error, matching the source format's best-effort dictionary lookup.
func (c *ParseContext) ParsePropertyKey() (PropertyKey, error) {
	tag, err := c.Stream.ReadUint8()
	if err != nil {
		return PropertyKey{}, err
	}
	idx, err := c.Stream.ReadUint24()
	if err != nil {
		return PropertyKey{}, err
	}
	name, _ := c.Names.Name(idx)
	return PropertyKey{Type: AssetPropertyType(tag), NameIndex: idx, Name: name}, nil
}

// ParseProperty reads one (key, value) property pair.
func (c *ParseContext) ParseProperty() (Property, error) {
	key, err := c.ParsePropertyKey()
	if err != nil {
		return Property{}, err
	}

	var value interface{}
	switch key.Type {
	case PropertyBool:
		value, err = c.Stream.ReadBool()
	case PropertyInt32:
		value, err = c.Stream.ReadInt32()
	case PropertyReal:
		value, err = c.Stream.ReadFloat()
	case PropertyAsciiString, PropertyUnknown:
		value, err = c.Stream.ReadUint16PrefixedAsciiString()
	case PropertyUnicodeString:
		value, err = c.Stream.ReadUint16PrefixedUnicodeString()
	default:
		return Property{}, fmt.Errorf("%w: %d", ErrUnknownPropertyType, key.Type)
	}
	if err != nil {
		return Property{}, err
	}

	c.Logger.Debugf("property %s (index %d), type %d, value %v", key.Name, key.NameIndex, key.Type, value)
	return Property{Name: key.Name, Type: key.Type, Value: value}, nil
}

// ParseProperties reads a u16 count then that many properties into an
// order-preserving, duplicate-checked PropertyList.
func (c *ParseContext) ParseProperties() (*PropertyList, error) {
	count, err := c.Stream.ReadUint16()
	if err != nil {
		return nil, err
	}
	list := NewPropertyList()
	for i := 0; i < int(count); i++ {
		prop, err := c.ParseProperty()
		if err != nil {
			return nil, err
		}
		if err := list.Add(prop); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// WriteContext is ParseContext's writing counterpart: it owns an
// append-only name table (seeded from the original file's table for
// byte-exact round-trip) and provides the scoped per-asset backpatching
// helper.
type WriteContext struct {
	Stream *Stream
	Names  *NameTable
	Logger *log.Helper

	HasAssetList bool
}

// NewWriteContext constructs a WriteContext over stream, seeded with names.
func NewWriteContext(stream *Stream, names *NameTable, logger *log.Helper) *WriteContext {
	if logger == nil {
		logger = log.NewHelper(nil)
	}
	return &WriteContext{Stream: stream, Names: names, Logger: logger}
}

// WriteAssetName registers name in the table (if new) and writes its index.
func (c *WriteContext) WriteAssetName(name string) {
	idx := c.Names.Add(name)
	c.Stream.WriteUint32(idx)
}

// WritePropertyKey registers key.Name (if new) and writes the (type, u24
// index) pair.
func (c *WriteContext) WritePropertyKey(key PropertyKey) error {
	c.Stream.WriteUint8(uint8(key.Type))
	idx := c.Names.Add(key.Name)
	return c.Stream.WriteUint24(idx)
}

// WriteProperties writes a u16 count then each property's (type, index,
// value) triple, in list order.
func (c *WriteContext) WriteProperties(list *PropertyList) error {
	c.Stream.WriteUint16(uint16(list.Len()))
	for _, p := range list.Items() {
		idx := c.Names.Add(p.Name)
		c.Stream.WriteUint8(uint8(p.Type))
		if err := c.Stream.WriteUint24(idx); err != nil {
			return err
		}
		switch p.Type {
		case PropertyBool:
			c.Stream.WriteBool(p.Value.(bool))
		case PropertyInt32:
			c.Stream.WriteInt32(p.Value.(int32))
		case PropertyReal:
			c.Stream.WriteFloat(p.Value.(float32))
		case PropertyAsciiString, PropertyUnknown:
			c.Stream.WriteUint16PrefixedAsciiString(p.Value.(string))
		case PropertyUnicodeString:
			if err := c.Stream.WriteUint16PrefixedUnicodeString(p.Value.(string)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %d", ErrUnknownPropertyType, p.Type)
		}
	}
	return nil
}

// WriteAsset writes a u16 version, a placeholder u32 datasize, invokes body
// to write the asset's fields, then back-patches the placeholder with the
// number of bytes body wrote.
func (c *WriteContext) WriteAsset(name string, version uint16, body func() error) error {
	c.Logger.Debugf("writing asset %s, version %d", name, version)
	c.Stream.WriteUint16(version)
	sizePos := c.Stream.Tell()
	c.Stream.WriteUint32(0)
	dataStart := c.Stream.Tell()

	if err := body(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	end := c.Stream.Tell()
	size := uint32(end - dataStart)
	c.Stream.Seek(sizePos)
	c.Stream.WriteUint32(size)
	c.Stream.Seek(end)
	return nil
}
