// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "testing"

func TestMapColorArgbRoundTrip(t *testing.T) {
	want := MapColorArgb{A: 0x11, R: 0x22, G: 0x33, B: 0x44}
	s := NewWriteStream()
	s.WriteMapColorArgb(want)

	r := NewStream(s.Bytes())
	got, err := r.ReadMapColorArgb()
	if err != nil {
		t.Fatalf("ReadMapColorArgb: %v", err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func sampleGlobalLightingConfig(version uint16) GlobalLightingConfiguration {
	cfg := GlobalLightingConfiguration{
		TerrainSun:     GlobalLight{Ambient: Vec3{1, 1, 1}, Color: Vec3{2, 2, 2}, Direction: Vec3{0, -1, 0}},
		TerrainAccent1: GlobalLight{Ambient: Vec3{1, 0, 0}},
		TerrainAccent2: GlobalLight{Ambient: Vec3{0, 0, 1}},
	}
	if version < 10 {
		obj := GlobalLight{Ambient: Vec3{3, 3, 3}}
		cfg.ObjectSun = &obj
		cfg.ObjectAccent1 = &obj
		cfg.ObjectAccent2 = &obj
		if version >= 7 {
			inf := GlobalLight{Ambient: Vec3{4, 4, 4}}
			cfg.InfantrySun = &inf
			cfg.InfantryAccent1 = &inf
			cfg.InfantryAccent2 = &inf
		}
	}
	return cfg
}

func sampleGlobalLighting(version uint16) *GlobalLighting {
	gl := &GlobalLighting{
		Version:      version,
		TimeOfTheDay: Morning,
		ShadowColor:  MapColorArgb{A: 255, R: 10, G: 20, B: 30},
		LightingConfigurations: map[TimeOfTheDay]GlobalLightingConfiguration{
			Morning:   sampleGlobalLightingConfig(version),
			Afternoon: sampleGlobalLightingConfig(version),
			Evening:   sampleGlobalLightingConfig(version),
			Night:     sampleGlobalLightingConfig(version),
		},
	}
	if version >= 7 && version < 11 {
		n := 44
		if version >= 9 {
			n = 4
		}
		gl.Unknown = make([]byte, n)
		gl.Unknown[0] = 0xAB
	}
	if version >= 12 {
		v := Vec3{9, 9, 9}
		col := MapColorArgb{A: 1, R: 2, G: 3, B: 4}
		gl.Unknown2 = &v
		gl.Unknown3 = &col
	}
	if version >= 8 {
		v := Vec3{0.5, 0.5, 0.5}
		gl.NoCloudFactor = &v
	}
	return gl
}

func TestGlobalLightingRoundTrip(t *testing.T) {
	for _, version := range []uint16{5, 7, 8, 9, 10, 12} {
		gl := sampleGlobalLighting(version)

		names := NewNameTable()
		wc := NewWriteContext(NewWriteStream(), names, nil)
		if err := gl.Write(wc); err != nil {
			t.Fatalf("version %d: Write: %v", version, err)
		}

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
		got, err := ParseGlobalLighting(pc)
		if err != nil {
			t.Fatalf("version %d: ParseGlobalLighting: %v", version, err)
		}
		if got.ShadowColor != gl.ShadowColor {
			t.Errorf("version %d: ShadowColor = %+v, want %+v", version, got.ShadowColor, gl.ShadowColor)
		}
		morning := got.LightingConfigurations[Morning]
		if version < 10 && morning.ObjectSun == nil {
			t.Errorf("version %d: expected ObjectSun to be present", version)
		}
		if version >= 10 && morning.ObjectSun != nil {
			t.Errorf("version %d: expected ObjectSun to be absent", version)
		}
		if version >= 7 && version < 10 && morning.InfantrySun == nil {
			t.Errorf("version %d: expected InfantrySun to be present", version)
		}
	}
}
