// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import (
	"errors"
	"testing"
)

func TestScriptArgumentRoundTrip(t *testing.T) {
	cases := []ScriptArgument{
		{Type: ArgInteger, IntValue: -7, FloatValue: 1.5, StringValue: "x"},
		{Type: ArgPositionCoordinate, Position: Vec3{1, 2, 3}},
	}
	for _, want := range cases {
		c := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
		want.write(c)

		pc := NewParseContext(NewStream(c.Stream.Bytes()), NewNameTable(), nil)
		got, err := parseScriptArgument(pc)
		if err != nil {
			t.Fatalf("parseScriptArgument: %v", err)
		}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	}
}

func sampleScript(version uint16) *Script {
	s := &Script{
		Version:           version,
		Name:              "Script_01",
		Comment:           "do the thing",
		ConditionsComment: "when visible",
		ActionsComment:    "then go",
		IsActive:          true,
		ActiveInEasy:      true,
		ActiveInMedium:    true,
		ActiveInHard:      true,
	}
	if version >= 2 {
		v := uint32(30)
		s.EvaluationInterval = &v
	}
	if version >= 3 {
		f, loop, tt := true, false, true
		count := int32(-1)
		name := "target"
		s.ActionsFireSequentially = &f
		s.LoopActions = &loop
		s.LoopCount = &count
		s.SequentialTargetType = &tt
		s.SequentialTargetName = &name
	}
	if version >= 4 {
		u := "ALL"
		s.Unknown = &u
	}
	if version >= 6 {
		u2 := int32(9)
		u3 := uint16(0)
		s.Unknown2 = &u2
		s.Unknown3 = &u3
	}
	s.ActionsIfTrue = []ScriptDerived{
		{Version: 2, ContentType: 5, InternalName: &PropertyKey{Type: PropertyAsciiString, Name: "MoveTeamTo"}, Arguments: []ScriptArgument{{Type: ArgInteger, IntValue: 1}}},
	}
	return s
}

func TestScriptRoundTrip(t *testing.T) {
	for _, version := range []uint16{1, 2, 3, 4, 5, 6} {
		s := sampleScript(version)

		names := NewNameTable()
		wc := NewWriteContext(NewWriteStream(), names, nil)
		if err := s.Write(wc); err != nil {
			t.Fatalf("version %d: Write: %v", version, err)
		}

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
		got, err := ParseScript(pc)
		if err != nil {
			t.Fatalf("version %d: ParseScript: %v", version, err)
		}
		if got.Name != s.Name || got.Comment != s.Comment {
			t.Errorf("version %d: got %+v", version, got)
		}
		if len(got.ActionsIfTrue) != 1 || got.ActionsIfTrue[0].ContentType != 5 {
			t.Errorf("version %d: actions not round-tripped: %+v", version, got.ActionsIfTrue)
		}
	}
}

func TestScriptUnknownStringInvariant(t *testing.T) {
	s := sampleScript(4)
	bad := "Nonsense"
	s.Unknown = &bad

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := s.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	if _, err := ParseScript(pc); !errors.Is(err, ErrScriptUnknownString) {
		t.Errorf("got %v, want ErrScriptUnknownString", err)
	}
}

func TestScriptUnknown3Invariant(t *testing.T) {
	s := sampleScript(6)
	bad := uint16(3)
	s.Unknown3 = &bad

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := s.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	if _, err := ParseScript(pc); !errors.Is(err, ErrScriptUnknown3) {
		t.Errorf("got %v, want ErrScriptUnknown3", err)
	}
}

func TestOrConditionRoundTrip(t *testing.T) {
	oc := &OrCondition{
		Version: 5,
		Conditions: []ScriptDerived{
			{Version: 4, ContentType: 1, InternalName: &PropertyKey{Type: PropertyAsciiString, Name: "TeamIsDead"}, Arguments: nil},
		},
	}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := oc.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseOrCondition(pc)
	if err != nil {
		t.Fatalf("ParseOrCondition: %v", err)
	}
	if len(got.Conditions) != 1 || got.Conditions[0].ContentType != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestScriptGroupNestedRoundTrip(t *testing.T) {
	group := &ScriptGroup{
		Version:      1,
		Name:         "Outer",
		IsActive:     true,
		IsSubroutine: false,
		Items: []ScriptTreeNode{
			&ScriptGroup{Version: 1, Name: "Inner", Items: []ScriptTreeNode{sampleScript(6)}},
			sampleScript(6),
		},
	}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := group.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseScriptGroup(pc)
	if err != nil {
		t.Fatalf("ParseScriptGroup: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(got.Items))
	}
	inner, ok := got.Items[0].(*ScriptGroup)
	if !ok {
		t.Fatalf("Items[0] type = %T, want *ScriptGroup", got.Items[0])
	}
	if inner.Name != "Inner" {
		t.Errorf("inner.Name = %q, want Inner", inner.Name)
	}
	if _, ok := got.Items[1].(*Script); !ok {
		t.Errorf("Items[1] type = %T, want *Script", got.Items[1])
	}
}

func TestScriptListVersionInvariant(t *testing.T) {
	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	wc.Stream.WriteUint16(2) // invalid ScriptList version
	pos := wc.Stream.Tell()
	wc.Stream.WriteUint32(0) // placeholder datasize
	_ = pos

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	if _, err := ParseScriptList(pc); !errors.Is(err, ErrScriptListVersion) {
		t.Errorf("got %v, want ErrScriptListVersion", err)
	}
}

func TestPlayerScriptsListRoundTrip(t *testing.T) {
	p := &PlayerScriptsList{
		Version: 1,
		ScriptLists: []ScriptList{
			{Version: 1, Items: []ScriptTreeNode{sampleScript(6)}},
		},
	}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := p.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParsePlayerScriptsList(pc)
	if err != nil {
		t.Fatalf("ParsePlayerScriptsList: %v", err)
	}
	if len(got.ScriptLists) != 1 || len(got.ScriptLists[0].Items) != 1 {
		t.Errorf("got %+v", got)
	}
}
