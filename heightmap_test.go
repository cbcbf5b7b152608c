// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "testing"

func sampleHeightMapData(version uint16) *HeightMapData {
	hm := &HeightMapData{
		Version:     version,
		Width:       2,
		Height:      3,
		BorderWidth: 1,
		Borders: []HeightMapBorder{
			{Corner1X: 1, Corner1Y: 2, X: 3, Y: 4},
		},
		Area:       6,
		Elevations: NewGrid[uint16](2, 3),
	}
	hm.Elevations.Set(0, 0, 10)
	hm.Elevations.Set(1, 2, 200)
	return hm
}

func TestHeightMapDataRoundTrip(t *testing.T) {
	for _, version := range []uint16{4, 5, 6} {
		hm := sampleHeightMapData(version)

		names := NewNameTable()
		wc := NewWriteContext(NewWriteStream(), names, nil)
		if err := hm.Write(wc); err != nil {
			t.Fatalf("version %d: Write: %v", version, err)
		}

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
		got, err := ParseHeightMapData(pc)
		if err != nil {
			t.Fatalf("version %d: ParseHeightMapData: %v", version, err)
		}

		if got.Width != hm.Width || got.Height != hm.Height {
			t.Errorf("version %d: dims = (%d,%d), want (%d,%d)", version, got.Width, got.Height, hm.Width, hm.Height)
		}
		if version >= 6 {
			if got.Borders[0].Corner1X != 1 || got.Borders[0].Corner1Y != 2 {
				t.Errorf("version %d: Corner1 not round-tripped: %v", version, got.Borders[0])
			}
		} else if got.Borders[0].Corner1X != 0 || got.Borders[0].Corner1Y != 0 {
			t.Errorf("version %d: Corner1 should default to zero pre-v6: %v", version, got.Borders[0])
		}
		if got.Elevations.At(0, 0) != 10 || got.Elevations.At(1, 2) != 200 {
			t.Errorf("version %d: elevations not round-tripped: %v", version, got.Elevations.Data)
		}
		if pc.HeightMap != got {
			t.Errorf("version %d: ParseHeightMapData did not record itself on ParseContext.HeightMap", version)
		}
	}
}

func TestHeightMapDataAreaMismatch(t *testing.T) {
	hm := sampleHeightMapData(5)
	hm.Area = 999 // deliberately wrong

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := hm.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	if _, err := ParseHeightMapData(pc); err == nil {
		t.Error("expected an area mismatch error")
	}
}

func TestHeightMapDataLegacyByteElevations(t *testing.T) {
	hm := sampleHeightMapData(4) // version < 5: elevations are single bytes.
	hm.Elevations.Set(0, 0, 250)

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := hm.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseHeightMapData(pc)
	if err != nil {
		t.Fatalf("ParseHeightMapData: %v", err)
	}
	if got.Elevations.At(0, 0) != 250 {
		t.Errorf("got %d, want 250", got.Elevations.At(0, 0))
	}
	if got.MinHeight > 250 || got.MaxHeight != 250 {
		t.Errorf("min/max not tracked correctly: min=%d max=%d", got.MinHeight, got.MaxHeight)
	}
}
