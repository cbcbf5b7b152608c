// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "testing"

func TestNameTableAddIsAppendOnly(t *testing.T) {
	t1 := NewNameTable()
	i1 := t1.Add("HeightMapData")
	i2 := t1.Add("BlendTileData")
	i3 := t1.Add("HeightMapData")

	if i1 != 1 || i2 != 2 {
		t.Fatalf("got indices %d, %d, want 1, 2", i1, i2)
	}
	if i3 != i1 {
		t.Errorf("re-adding an existing name changed its index: got %d, want %d", i3, i1)
	}
	if t1.Len() != 2 {
		t.Errorf("Len() = %d, want 2", t1.Len())
	}
}

func TestNameTableNameAndIndex(t *testing.T) {
	t1 := NewNameTable()
	t1.Add("WorldInfo")

	name, ok := t1.Name(1)
	if !ok || name != "WorldInfo" {
		t.Errorf("Name(1) = %q, %v, want WorldInfo, true", name, ok)
	}
	idx, ok := t1.Index("WorldInfo")
	if !ok || idx != 1 {
		t.Errorf("Index(WorldInfo) = %d, %v, want 1, true", idx, ok)
	}
	if _, ok := t1.Name(99); ok {
		t.Errorf("Name(99) reported present for an unregistered index")
	}
}

func TestNameTableClone(t *testing.T) {
	t1 := NewNameTable()
	t1.Add("AssetList")
	t1.Add("GlobalVersion")

	clone := t1.Clone()
	clone.Add("WorldInfo")

	if t1.Len() != 2 {
		t.Errorf("original table mutated by clone: Len() = %d, want 2", t1.Len())
	}
	if clone.Len() != 3 {
		t.Errorf("clone.Len() = %d, want 3", clone.Len())
	}
}

func TestNameTableRoundTrip(t *testing.T) {
	t1 := NewNameTable()
	t1.Add("AssetList")
	t1.Add("HeightMapData")
	t1.Add("BlendTileData")

	s := NewWriteStream()
	s.WriteNameTable("CMP2", t1)

	r := NewStream(s.Bytes())
	t2, marker, err := r.ParseNameTable()
	if err != nil {
		t.Fatalf("ParseNameTable: %v", err)
	}
	if marker != "CMP2" {
		t.Errorf("marker = %q, want CMP2", marker)
	}
	if t2.Len() != t1.Len() {
		t.Fatalf("Len() = %d, want %d", t2.Len(), t1.Len())
	}
	for i := uint32(1); i <= uint32(t1.Len()); i++ {
		want, _ := t1.Name(i)
		got, ok := t2.Name(i)
		if !ok || got != want {
			t.Errorf("Name(%d) = %q, %v, want %q, true", i, got, ok, want)
		}
	}
}

func TestParseNameTableIndexMismatch(t *testing.T) {
	s := NewWriteStream()
	s.WriteFourCC("CMP2")
	s.WriteUint32(1)
	s.WriteString("AssetList")
	s.WriteUint32(42) // should be 1

	r := NewStream(s.Bytes())
	if _, _, err := r.ParseNameTable(); err != ErrAssetIndexMismatch {
		t.Errorf("got %v, want ErrAssetIndexMismatch", err)
	}
}
