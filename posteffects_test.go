// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "testing"

func TestPostEffectParameterRoundTrip(t *testing.T) {
	cases := []PostEffectParameter{
		{Name: "Blend", Type: "Float", FloatValue: 0.5},
		{Name: "Tint", Type: "Float4", Float4Value: Vec4{1, 2, 3, 4}},
		{Name: "Count", Type: "Int", IntValue: -3},
		{Name: "Lookup", Type: "Texture", TextureValue: "lut01"},
	}
	for _, want := range cases {
		wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
		if err := want.write(wc); err != nil {
			t.Fatalf("%s: write: %v", want.Type, err)
		}

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
		got, err := parsePostEffectParameter(pc)
		if err != nil {
			t.Fatalf("%s: parsePostEffectParameter: %v", want.Type, err)
		}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}
}

func TestPostEffectParameterUnknownType(t *testing.T) {
	p := PostEffectParameter{Name: "X", Type: "Bogus"}
	wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
	if err := p.write(wc); err != ErrUnknownPostEffectParameterType {
		t.Errorf("write: got %v, want ErrUnknownPostEffectParameterType", err)
	}
}

func TestPostEffectLegacyRoundTrip(t *testing.T) {
	bf := float32(0.25)
	li := "lookup01"
	pe := PostEffect{BlendFactor: &bf, LookupImage: &li}

	wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
	if err := pe.write(wc, 1); err != nil {
		t.Fatalf("write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
	got, err := parsePostEffect(pc, 1)
	if err != nil {
		t.Fatalf("parsePostEffect: %v", err)
	}
	if got.BlendFactor == nil || *got.BlendFactor != bf || got.LookupImage == nil || *got.LookupImage != li {
		t.Errorf("got %+v", got)
	}
}

func TestPostEffectModernRoundTrip(t *testing.T) {
	pe := PostEffect{Parameters: []PostEffectParameter{
		{Name: "Blend", Type: "Float", FloatValue: 0.5},
		{Name: "Lookup", Type: "Texture", TextureValue: "lut01"},
	}}

	wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
	if err := pe.write(wc, 2); err != nil {
		t.Fatalf("write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), NewNameTable(), nil)
	got, err := parsePostEffect(pc, 2)
	if err != nil {
		t.Fatalf("parsePostEffect: %v", err)
	}
	if len(got.Parameters) != 2 || got.Parameters[1].TextureValue != "lut01" {
		t.Errorf("got %+v", got)
	}
}

func TestPostEffectsChunkRoundTrip(t *testing.T) {
	for _, version := range []uint16{1, 2} {
		pec := &PostEffectsChunk{Version: version}
		if version >= 2 {
			pec.Effects = []PostEffect{{Parameters: []PostEffectParameter{
				{Name: "Blend", Type: "Float", FloatValue: 0.1},
			}}}
		} else {
			bf := float32(0.1)
			li := "lut"
			pec.Effects = []PostEffect{{BlendFactor: &bf, LookupImage: &li}}
		}

		names := NewNameTable()
		wc := NewWriteContext(NewWriteStream(), names, nil)
		if err := pec.Write(wc); err != nil {
			t.Fatalf("version %d: Write: %v", version, err)
		}

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
		got, err := ParsePostEffectsChunk(pc)
		if err != nil {
			t.Fatalf("version %d: ParsePostEffectsChunk: %v", version, err)
		}
		if len(got.Effects) != 1 {
			t.Errorf("version %d: got %+v", version, got)
		}
	}
}
