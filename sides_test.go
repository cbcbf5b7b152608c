// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "testing"

func TestTeamsRoundTrip(t *testing.T) {
	list := NewPropertyList()
	list.Add(Property{Name: "teamName", Type: PropertyAsciiString, Value: "TeamAmerica"})

	teams := &Teams{Version: 1, Teams: []Team{{Properties: list}}}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := teams.Write(wc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseTeams(pc)
	if err != nil {
		t.Fatalf("ParseTeams: %v", err)
	}
	if len(got.Teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(got.Teams))
	}
	p, ok := got.Teams[0].Properties.Get("teamName")
	if !ok || p.Value.(string) != "TeamAmerica" {
		t.Errorf("teamName = %v, %v", p.Value, ok)
	}
}

func sampleBuildListInfo() BuildListInfo {
	return BuildListInfo{
		BuildName:        "Barracks",
		TemplateName:     "AmericaBarracks",
		Location:         Vec3{10, 20, 0},
		Angle:            1.57,
		IsInitiallyBuilt: true,
		NumRebuilds:      2,
		Script:           "",
		Health:           100,
		Whiner:           false,
		Unsellable:       false,
		Repairable:       true,
	}
}

func TestBuildListInfoRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		version      uint16
		hasAssetList bool
	}{
		{5, true}, {6, true}, {6, false},
	} {
		item := sampleBuildListInfo()
		if tt.version >= 6 && tt.hasAssetList {
			u := true
			item.Unknown = &u
		}

		names := NewNameTable()
		wc := NewWriteContext(NewWriteStream(), names, nil)
		item.Write(wc, tt.hasAssetList)

		pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
		got, err := ParseBuildListInfo(pc, tt.version, tt.hasAssetList)
		if err != nil {
			t.Fatalf("version %d hasAssetList %v: ParseBuildListInfo: %v", tt.version, tt.hasAssetList, err)
		}
		if got.BuildName != item.BuildName || got.Health != item.Health {
			t.Errorf("version %d hasAssetList %v: got %+v", tt.version, tt.hasAssetList, got)
		}
	}
}

func TestBuildListFactionIdentification(t *testing.T) {
	names := NewNameTable()

	// hasAssetList: inline faction name string.
	bl := &BuildList{FactionName: "FactionAmerica", Items: []BuildListInfo{sampleBuildListInfo()}}
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := bl.Write(wc, true); err != nil {
		t.Fatalf("Write (hasAssetList): %v", err)
	}
	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseBuildList(pc, 6, true)
	if err != nil {
		t.Fatalf("ParseBuildList (hasAssetList): %v", err)
	}
	if got.FactionName != "FactionAmerica" {
		t.Errorf("FactionName = %q, want FactionAmerica", got.FactionName)
	}

	// !hasAssetList: faction identified by property-key reference.
	names2 := NewNameTable()
	bl2 := &BuildList{FactionNameProperty: &PropertyKey{Type: PropertyAsciiString, Name: "FactionChina"}, Items: []BuildListInfo{sampleBuildListInfo()}}
	wc2 := NewWriteContext(NewWriteStream(), names2, nil)
	if err := bl2.Write(wc2, false); err != nil {
		t.Fatalf("Write (!hasAssetList): %v", err)
	}
	pc2 := NewParseContext(NewStream(wc2.Stream.Bytes()), names2, nil)
	got2, err := ParseBuildList(pc2, 6, false)
	if err != nil {
		t.Fatalf("ParseBuildList (!hasAssetList): %v", err)
	}
	if got2.FactionNameProperty == nil || got2.FactionNameProperty.Name != "FactionChina" {
		t.Errorf("FactionNameProperty = %+v", got2.FactionNameProperty)
	}
}

func TestBuildListMissingPropertyKeyOnWrite(t *testing.T) {
	bl := &BuildList{Items: nil} // FactionNameProperty deliberately nil
	wc := NewWriteContext(NewWriteStream(), NewNameTable(), nil)
	if err := bl.Write(wc, false); err != ErrMissingPropertyKey {
		t.Errorf("got %v, want ErrMissingPropertyKey", err)
	}
}

func TestSidesListModernRoundTrip(t *testing.T) {
	list := NewPropertyList()
	list.Add(Property{Name: "playerName", Type: PropertyAsciiString, Value: "Player1"})

	sl := &SidesList{
		Version:  6,
		Unknown1: true,
		Players: []Player{
			{Properties: list, BuildListItems: []BuildListInfo{sampleBuildListInfo()}},
		},
	}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := sl.Write(wc, true); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseSidesList(pc, true)
	if err != nil {
		t.Fatalf("ParseSidesList: %v", err)
	}
	if len(got.Players) != 1 || len(got.Teams) != 0 {
		t.Errorf("got %+v", got)
	}
	if !got.Unknown1 {
		t.Error("Unknown1 not round-tripped")
	}
}

// TestSidesListLegacyTeamCountAsymmetry documents a deliberately preserved
// quirk: Parse reads a team count whenever version >= 2, but Write only
// re-emits one when version < 2. This mismatch is carried over from the
// source format rather than "fixed" here, so a legacy (2 <= version < 5)
// SidesList does not round-trip: parse reads a team count that Write never
// emitted. With no players and no teams, as here, that read runs past the
// end of the written bytes.
func TestSidesListLegacyTeamCountAsymmetry(t *testing.T) {
	sl := &SidesList{Version: 3, Players: nil, Teams: nil}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := sl.Write(wc, true); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	_, err := ParseSidesList(pc, true)
	if err == nil {
		t.Fatal("expected the preserved write/parse asymmetry to surface as an error for version 3")
	}
}

func TestBuildListsRoundTrip(t *testing.T) {
	blists := &BuildLists{
		Version: 6,
		Lists: []BuildList{
			{FactionName: "FactionAmerica", Items: []BuildListInfo{sampleBuildListInfo()}},
		},
	}

	names := NewNameTable()
	wc := NewWriteContext(NewWriteStream(), names, nil)
	if err := blists.Write(wc, true); err != nil {
		t.Fatalf("Write: %v", err)
	}

	pc := NewParseContext(NewStream(wc.Stream.Bytes()), names, nil)
	got, err := ParseBuildLists(pc, true)
	if err != nil {
		t.Fatalf("ParseBuildLists: %v", err)
	}
	if len(got.Lists) != 1 || got.Lists[0].FactionName != "FactionAmerica" {
		t.Errorf("got %+v", got)
	}
}
