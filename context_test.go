// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "testing"

func TestWriteAssetBackpatchesDataSize(t *testing.T) {
	names := NewNameTable()
	c := NewWriteContext(NewWriteStream(), names, nil)

	err := c.WriteAsset("WorldInfo", 3, func() error {
		c.Stream.WriteUint32(0xAABBCCDD)
		c.Stream.WriteUint16(7)
		return nil
	})
	if err != nil {
		t.Fatalf("WriteAsset: %v", err)
	}

	r := NewStream(c.Stream.Bytes())
	pc := NewParseContext(r, names, nil)
	h, err := pc.ReadAsset("WorldInfo", func(h AssetHeader) error {
		v, err := pc.Stream.ReadUint32()
		if err != nil {
			return err
		}
		if v != 0xAABBCCDD {
			t.Errorf("got %x, want %x", v, 0xAABBCCDD)
		}
		_, err = pc.Stream.ReadUint16()
		return err
	})
	if err != nil {
		t.Fatalf("ReadAsset: %v", err)
	}
	if h.Version != 3 {
		t.Errorf("Version = %d, want 3", h.Version)
	}
	if h.DataSize != 6 {
		t.Errorf("DataSize = %d, want 6", h.DataSize)
	}
}

func TestReadAssetDataSizeMismatch(t *testing.T) {
	names := NewNameTable()
	s := NewWriteStream()
	s.WriteUint16(1)
	s.WriteUint32(4) // claims 4 bytes
	s.WriteUint32(0) // but body only consumes these 4 bytes correctly... force a mismatch below

	r := NewStream(s.Bytes())
	c := NewParseContext(r, names, nil)
	_, err := c.ReadAsset("Broken", func(h AssetHeader) error {
		// consume only 2 of the declared 4 bytes.
		_, err := c.Stream.ReadUint16()
		return err
	})
	if err == nil {
		t.Fatal("expected a datasize mismatch error")
	}
}

func TestWriteAssetNameGrowsTable(t *testing.T) {
	names := NewNameTable()
	c := NewWriteContext(NewWriteStream(), names, nil)
	c.WriteAssetName("HeightMapData")

	r := NewStream(c.Stream.Bytes())
	pc := NewParseContext(r, names, nil)
	name, err := pc.ParseAssetName()
	if err != nil {
		t.Fatalf("ParseAssetName: %v", err)
	}
	if name != "HeightMapData" {
		t.Errorf("got %q, want HeightMapData", name)
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	names := NewNameTable()
	c := NewWriteContext(NewWriteStream(), names, nil)

	list := NewPropertyList()
	list.Add(Property{Name: "isHuman", Type: PropertyBool, Value: true})
	list.Add(Property{Name: "startingCash", Type: PropertyInt32, Value: int32(5000)})
	list.Add(Property{Name: "playerName", Type: PropertyUnicodeString, Value: "España"})

	if err := c.WriteProperties(list); err != nil {
		t.Fatalf("WriteProperties: %v", err)
	}

	r := NewStream(c.Stream.Bytes())
	pc := NewParseContext(r, names, nil)
	got, err := pc.ParseProperties()
	if err != nil {
		t.Fatalf("ParseProperties: %v", err)
	}
	if got.Len() != list.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), list.Len())
	}
	for _, want := range list.Items() {
		p, ok := got.Get(want.Name)
		if !ok {
			t.Errorf("missing property %s", want.Name)
			continue
		}
		if p.Value != want.Value {
			t.Errorf("property %s: got %v, want %v", want.Name, p.Value, want.Value)
		}
	}
}

func TestParsePropertyUnknownType(t *testing.T) {
	names := NewNameTable()
	names.Add("x")
	s := NewWriteStream()
	s.WriteUint8(200) // not a valid AssetPropertyType
	s.WriteUint24(1)

	r := NewStream(s.Bytes())
	c := NewParseContext(r, names, nil)
	if _, err := c.ParseProperty(); err == nil {
		t.Error("expected an error for an unknown property type")
	}
}
