// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleMap() *Map {
	return &Map{
		SkippedAssets: map[string]*SkippedAsset{},
		GlobalVersion: &GlobalVersion{Version: 1},
		WorldInfo: &WorldInfo{Version: 1, Properties: NewPropertyList()},
		WaterSettings: &WaterSettings{Version: 1, ReflectionOn: true, ReflectionPlaneZ: 1},
	}
}

func TestMapWriteParseRoundTrip(t *testing.T) {
	m := sampleMap()

	raw, err := m.Write(false)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := &Map{opts: &Options{}, SkippedAssets: map[string]*SkippedAsset{}}
	got.logger = m.logger
	if err := got.parseBytes(raw); err != nil {
		t.Fatalf("parseBytes: %v", err)
	}
	if got.GlobalVersion == nil || got.GlobalVersion.Version != 1 {
		t.Errorf("GlobalVersion = %+v", got.GlobalVersion)
	}
	if got.WaterSettings == nil || !got.WaterSettings.ReflectionOn {
		t.Errorf("WaterSettings = %+v", got.WaterSettings)
	}
}

func TestMapWriteCompressedRoundTrip(t *testing.T) {
	m := sampleMap()

	raw, err := m.Write(true)
	if err != nil {
		t.Fatalf("Write(compress): %v", err)
	}

	got := &Map{opts: &Options{}, SkippedAssets: map[string]*SkippedAsset{}}
	got.logger = m.logger
	if err := got.parseBytes(raw); err != nil {
		t.Fatalf("parseBytes: %v", err)
	}
	if got.GlobalVersion == nil || got.GlobalVersion.Version != 1 {
		t.Errorf("GlobalVersion = %+v", got.GlobalVersion)
	}
}

func TestMapFingerprintDeterministic(t *testing.T) {
	m := sampleMap()

	h1, err := m.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	h2, err := m.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if h1 != h2 {
		t.Errorf("Fingerprint not deterministic: %d != %d", h1, h2)
	}
}

func TestMapOpenRoundTrip(t *testing.T) {
	m := sampleMap()
	raw, err := m.Write(false)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "test.map")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer got.Close()

	if got.GlobalVersion == nil || got.GlobalVersion.Version != 1 {
		t.Errorf("GlobalVersion = %+v", got.GlobalVersion)
	}
}

func TestMapOpenStrictUnknownAssets(t *testing.T) {
	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	wc.WriteAssetName("TotallyUnknownAsset")
	if err := wc.WriteAsset("TotallyUnknownAsset", 1, func() error { return nil }); err != nil {
		t.Fatalf("WriteAsset: %v", err)
	}

	out := NewWriteStream()
	out.WriteNameTable("CMP2", names)
	out.WriteRawBytes(wc.Stream.Bytes())

	dir := t.TempDir()
	path := filepath.Join(dir, "strict.map")
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Open(path, &Options{StrictUnknownAssets: true}); err == nil {
		t.Error("expected an error for an unknown asset under StrictUnknownAssets")
	}

	got, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open (lenient): %v", err)
	}
	defer got.Close()
	if _, ok := got.SkippedAssets["TotallyUnknownAsset"]; !ok {
		t.Error("expected TotallyUnknownAsset to be captured in SkippedAssets")
	}
}
