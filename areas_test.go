// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "testing"

func samplePolygonTrigger(version uint16) *PolygonTrigger {
	t := &PolygonTrigger{
		Name:      "Trigger01",
		TriggerID: 1,
		Points:    [][3]int32{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}},
	}
	if version >= 4 {
		layer := "LayerA"
		t.LayerName = &layer
	}
	if version >= 3 {
		t.IsRiver = true
		start := true
		t.RiverStart = &start
	}
	if version >= 5 {
		river, noise, alpha, sparkle, bump, sky := "river01", "noise01", "alpha01", "sparkle01", "bump01", "sky01"
		t.RiverTexture = &river
		t.NoiseTexture = &noise
		t.AlphaEdgeTexture = &alpha
		t.SparkleTexture = &sparkle
		t.BumpMapTexture = &bump
		t.SkyTexture = &sky
		color := [3]uint8{10, 20, 30}
		t.RiverColor = &color
		unk := uint8(1)
		t.Unknown = &unk
		uv := Vec2{0.1, 0.2}
		t.UVScrollSpeed = &uv
		alphaV := float32(0.5)
		t.RiverAlpha = &alphaV
	}
	return t
}

func TestPolygonTriggerRoundTrip(t *testing.T) {
	for _, version := range []uint16{1, 2, 3, 4, 5} {
		pt := samplePolygonTrigger(version)

		wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
		pt.Write(wc, version)

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
		got, err := ParsePolygonTrigger(pc, version)
		if err != nil {
			t.Fatalf("version %d: ParsePolygonTrigger: %v", version, err)
		}
		if got.Name != pt.Name || got.TriggerID != pt.TriggerID {
			t.Errorf("version %d: got %+v", version, got)
		}
		if len(got.Points) != len(pt.Points) {
			t.Errorf("version %d: Points = %v, want %v", version, got.Points, pt.Points)
		}
	}
}

func TestPolygonTriggersRoundTrip(t *testing.T) {
	pt := &PolygonTriggers{Version: 5, Triggers: []PolygonTrigger{*samplePolygonTrigger(5)}}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := pt.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParsePolygonTriggers(pc)
	if err != nil {
		t.Fatalf("ParsePolygonTriggers: %v", err)
	}
	if len(got.Triggers) != 1 || got.Triggers[0].Name != "Trigger01" {
		t.Errorf("got %+v", got)
	}
}

func TestTriggerAreaUnknown2Invariant(t *testing.T) {
	ta := &TriggerArea{Name: "A", LayerName: "L", AreaID: 1, Points: []Vec2{{0, 0}}, Unknown2: 7}

	wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
	ta.Write(wc)

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
	if _, err := ParseTriggerArea(pc); err != ErrTriggerAreaUnknown2 {
		t.Errorf("got %v, want ErrTriggerAreaUnknown2", err)
	}
}

func TestTriggerAreasRoundTrip(t *testing.T) {
	ta := &TriggerAreas{
		Version: 1,
		Areas: []TriggerArea{
			{Name: "A", LayerName: "L", AreaID: 1, Points: []Vec2{{0, 0}, {1, 1}}},
		},
	}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := ta.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseTriggerAreas(pc)
	if err != nil {
		t.Fatalf("ParseTriggerAreas: %v", err)
	}
	if len(got.Areas) != 1 || len(got.Areas[0].Points) != 2 {
		t.Errorf("got %+v", got)
	}
}

func sampleRiverArea(version uint16) *RiverArea {
	r := &RiverArea{
		UniqueID:      1,
		Name:          "River01",
		LayerName:     "L",
		UVScrollSpeed: 0.1,
		RiverTexture:  "river01",
		NoiseTexture:  "noise01",
		AlphaEdgeTexture: "alpha01",
		SparkleTexture:   "sparkle01",
		Color:            [3]uint8{1, 2, 3},
		Alpha:            0.5,
		WaterHeight:      100,
		MinimumWaterLOD:  "LOD0",
		Lines:            [][2]Vec2{{{0, 0}, {1, 1}}},
	}
	if version >= 3 {
		rt := "Major"
		r.RiverType = &rt
	}
	return r
}

func TestRiverAreaRoundTrip(t *testing.T) {
	for _, version := range []uint16{1, 2, 3} {
		r := sampleRiverArea(version)

		wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
		r.Write(wc, version)

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
		got, err := ParseRiverArea(pc, version)
		if err != nil {
			t.Fatalf("version %d: ParseRiverArea: %v", version, err)
		}
		if got.Name != r.Name || len(got.Lines) != 1 {
			t.Errorf("version %d: got %+v", version, got)
		}
		if version >= 3 && (got.RiverType == nil || *got.RiverType != "Major") {
			t.Errorf("version %d: RiverType = %v, want Major", version, got.RiverType)
		}
	}
}

func TestRiverAreaUnusedColorAlphaInvariant(t *testing.T) {
	r := sampleRiverArea(1)
	r.UnusedColorAlpha = 5

	wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
	r.Write(wc, 1)

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
	if _, err := ParseRiverArea(pc, 1); err != ErrRiverAreaUnusedColorAlpha {
		t.Errorf("got %v, want ErrRiverAreaUnusedColorAlpha", err)
	}
}

func TestRiverAreasRoundTrip(t *testing.T) {
	ra := &RiverAreas{Version: 3, Areas: []RiverArea{*sampleRiverArea(3)}}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := ra.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseRiverAreas(pc)
	if err != nil {
		t.Fatalf("ParseRiverAreas: %v", err)
	}
	if len(got.Areas) != 1 || got.Areas[0].Name != "River01" {
		t.Errorf("got %+v", got)
	}
}

func sampleStandingWaterArea() *StandingWaterArea {
	return &StandingWaterArea{
		UniqueID:      1,
		Name:          "Lake01",
		LayerName:     "L",
		UVScrollSpeed: 0.1,
		BumpMapTexture: "bump01",
		SkyTexture:     "sky01",
		Points:         []Vec2{{0, 0}, {1, 0}, {1, 1}},
		WaterHeight:    50,
		FxShader:       "WaterFx",
		DepthColor:     "Blue",
	}
}

func TestStandingWaterAreaRoundTrip(t *testing.T) {
	a := sampleStandingWaterArea()

	wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
	a.Write(wc)

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
	got, err := ParseStandingWaterArea(pc)
	if err != nil {
		t.Fatalf("ParseStandingWaterArea: %v", err)
	}
	if got.Name != a.Name || len(got.Points) != 3 || got.FxShader != a.FxShader {
		t.Errorf("got %+v", got)
	}
}

func TestStandingWaterAreasRoundTrip(t *testing.T) {
	sa := &StandingWaterAreas{Version: 1, Areas: []StandingWaterArea{*sampleStandingWaterArea()}}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := sa.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseStandingWaterAreas(pc)
	if err != nil {
		t.Fatalf("ParseStandingWaterAreas: %v", err)
	}
	if len(got.Areas) != 1 || got.Areas[0].Name != "Lake01" {
		t.Errorf("got %+v", got)
	}
}

func sampleStandingWaveArea(version uint16) *StandingWaveArea {
	a := &StandingWaveArea{
		UniqueID:  1,
		Name:      "Wave01",
		LayerName: "L",
		Points:    []Vec2{{0, 0}, {1, 0}},
	}
	if version < 3 {
		w, h, iw, ih, iv, tf, tc, to, ds := uint32(10), uint32(5), uint32(1), uint32(1), uint32(2), uint32(100), uint32(100), uint32(50), uint32(20)
		a.FinalWidth, a.FinalHeight = &w, &h
		a.InitialWidthFraction, a.InitialHeightFraction = &iw, &ih
		a.InitialVelocity = &iv
		a.TimeToFade, a.TimeToCompress = &tf, &tc
		a.TimeOffset2ndWave, a.DistanceFromShore = &to, &ds
		tex := "wave01"
		a.Texture = &tex
	}
	if version == 2 {
		v := true
		a.EnablePcaWave = &v
	}
	if version >= 4 {
		fx := "WaveFx"
		a.WaveParticleFxName = &fx
	}
	return a
}

func TestStandingWaveAreaRoundTrip(t *testing.T) {
	for _, version := range []uint16{1, 2, 4} {
		a := sampleStandingWaveArea(version)

		wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
		a.Write(wc, version)

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
		got, err := ParseStandingWaveArea(pc, version)
		if err != nil {
			t.Fatalf("version %d: ParseStandingWaveArea: %v", version, err)
		}
		if got.Name != a.Name || len(got.Points) != 2 {
			t.Errorf("version %d: got %+v", version, got)
		}
		if version < 3 && (got.Texture == nil || *got.Texture != "wave01") {
			t.Errorf("version %d: Texture = %v, want wave01", version, got.Texture)
		}
		if version == 2 && (got.EnablePcaWave == nil || !*got.EnablePcaWave) {
			t.Errorf("version %d: EnablePcaWave = %v, want true", version, got.EnablePcaWave)
		}
		if version >= 4 && (got.WaveParticleFxName == nil || *got.WaveParticleFxName != "WaveFx") {
			t.Errorf("version %d: WaveParticleFxName = %v, want WaveFx", version, got.WaveParticleFxName)
		}
	}
}

func TestStandingWaveAreaUnknownInvariant(t *testing.T) {
	a := sampleStandingWaveArea(4)
	a.Unknown = 3

	wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
	a.Write(wc, 4)

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
	if _, err := ParseStandingWaveArea(pc, 4); err != ErrStandingWaveAreaUnknown {
		t.Errorf("got %v, want ErrStandingWaveAreaUnknown", err)
	}
}

func TestStandingWaveAreasRoundTrip(t *testing.T) {
	sa := &StandingWaveAreas{Version: 4, Areas: []StandingWaveArea{*sampleStandingWaveArea(4)}}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := sa.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseStandingWaveAreas(pc)
	if err != nil {
		t.Fatalf("ParseStandingWaveAreas: %v", err)
	}
	if len(got.Areas) != 1 || got.Areas[0].Name != "Wave01" {
		t.Errorf("got %+v", got)
	}
}
