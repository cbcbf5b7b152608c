// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// Team is a named group of properties; SidesList embeds Team records
// directly for version < 5, while version >= 5 files carry them in the
// separate Teams asset instead.
type Team struct {
	Properties *PropertyList
}

// ParseTeam reads one inline Team record (a bare property list).
func ParseTeam(c *ParseContext) (*Team, error) {
	props, err := c.ParseProperties()
	if err != nil {
		return nil, err
	}
	return &Team{Properties: props}, nil
}

// Write writes one inline Team record.
func (t *Team) Write(c *WriteContext) error {
	return c.WriteProperties(t.Properties)
}

// Teams is the top-level asset carrying a side's teams for version >= 5
// SidesList files.
type Teams struct {
	Version uint16
	Teams   []Team
}

const teamsAssetName = "Teams"

// ParseTeams reads a Teams asset.
func ParseTeams(c *ParseContext) (*Teams, error) {
	t := &Teams{}
	_, err := c.ReadAsset(teamsAssetName, func(h AssetHeader) error {
		t.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		t.Teams = make([]Team, count)
		for i := range t.Teams {
			team, err := ParseTeam(c)
			if err != nil {
				return err
			}
			t.Teams[i] = *team
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Write writes the Teams asset.
func (t *Teams) Write(c *WriteContext) error {
	return c.WriteAsset(teamsAssetName, t.Version, func() error {
		c.Stream.WriteUint32(uint32(len(t.Teams)))
		for i := range t.Teams {
			if err := t.Teams[i].Write(c); err != nil {
				return err
			}
		}
		return nil
	})
}

// BuildListInfo is one buildable-structure entry, shared by BuildList
// (top-level BuildLists asset) and Player's inline build list.
type BuildListInfo struct {
	BuildName    string
	TemplateName string
	Location     Vec3
	Angle        float32

	IsInitiallyBuilt bool
	// Unknown is present only when version >= 6 and has_asset_list.
	Unknown *bool

	NumRebuilds uint32
	Script      string
	Health      int32
	Whiner      bool
	Unsellable  bool
	Repairable  bool
}

// ParseBuildListInfo reads one BuildListInfo record.
func ParseBuildListInfo(c *ParseContext, version uint16, hasAssetList bool) (*BuildListInfo, error) {
	b := &BuildListInfo{}
	var err error
	if b.BuildName, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return nil, err
	}
	if b.TemplateName, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return nil, err
	}
	if b.Location, err = c.Stream.ReadVector3(); err != nil {
		return nil, err
	}
	if b.Angle, err = c.Stream.ReadFloat(); err != nil {
		return nil, err
	}
	if b.IsInitiallyBuilt, err = c.Stream.ReadBool(); err != nil {
		return nil, err
	}
	if version >= 6 && hasAssetList {
		unk, err := c.Stream.ReadBool()
		if err != nil {
			return nil, err
		}
		b.Unknown = &unk
	}
	if b.NumRebuilds, err = c.Stream.ReadUint32(); err != nil {
		return nil, err
	}
	if b.Script, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return nil, err
	}
	if b.Health, err = c.Stream.ReadInt32(); err != nil {
		return nil, err
	}
	if b.Whiner, err = c.Stream.ReadBool(); err != nil {
		return nil, err
	}
	if b.Unsellable, err = c.Stream.ReadBool(); err != nil {
		return nil, err
	}
	if b.Repairable, err = c.Stream.ReadBool(); err != nil {
		return nil, err
	}
	c.Logger.Debugf("build list item: %s, template: %s, health: %d", b.BuildName, b.TemplateName, b.Health)
	return b, nil
}

// Write writes one BuildListInfo record.
func (b *BuildListInfo) Write(c *WriteContext, hasAssetList bool) {
	c.Stream.WriteUint16PrefixedAsciiString(b.BuildName)
	c.Stream.WriteUint16PrefixedAsciiString(b.TemplateName)
	c.Stream.WriteVector3(b.Location)
	c.Stream.WriteFloat(b.Angle)
	c.Stream.WriteBool(b.IsInitiallyBuilt)
	if hasAssetList && b.Unknown != nil {
		c.Stream.WriteBool(*b.Unknown)
	}
	c.Stream.WriteUint32(b.NumRebuilds)
	c.Stream.WriteUint16PrefixedAsciiString(b.Script)
	c.Stream.WriteInt32(b.Health)
	c.Stream.WriteBool(b.Whiner)
	c.Stream.WriteBool(b.Unsellable)
	c.Stream.WriteBool(b.Repairable)
}

// BuildList is one faction's build list within the BuildLists asset.
// Faction identification is an inline string in AssetList mode, or a
// property-key reference into the name table otherwise.
type BuildList struct {
	FactionName         string
	FactionNameProperty *PropertyKey
	Items               []BuildListInfo
}

// ParseBuildList reads one BuildList record.
func ParseBuildList(c *ParseContext, version uint16, hasAssetList bool) (*BuildList, error) {
	bl := &BuildList{}
	if hasAssetList {
		name, err := c.Stream.ReadUint16PrefixedAsciiString()
		if err != nil {
			return nil, err
		}
		bl.FactionName = name
	} else {
		key, err := c.ParsePropertyKey()
		if err != nil {
			return nil, err
		}
		bl.FactionNameProperty = &key
	}

	count, err := c.Stream.ReadUint32()
	if err != nil {
		return nil, err
	}
	bl.Items = make([]BuildListInfo, count)
	for i := range bl.Items {
		item, err := ParseBuildListInfo(c, version, hasAssetList)
		if err != nil {
			return nil, err
		}
		bl.Items[i] = *item
	}
	return bl, nil
}

// Write writes one BuildList record.
func (bl *BuildList) Write(c *WriteContext, hasAssetList bool) error {
	if hasAssetList {
		c.Stream.WriteUint16PrefixedAsciiString(bl.FactionName)
	} else {
		if bl.FactionNameProperty == nil {
			return ErrMissingPropertyKey
		}
		if err := c.WritePropertyKey(*bl.FactionNameProperty); err != nil {
			return err
		}
	}
	c.Stream.WriteUint32(uint32(len(bl.Items)))
	for i := range bl.Items {
		bl.Items[i].Write(c, hasAssetList)
	}
	return nil
}

// BuildLists is the top-level asset listing every faction's build list.
type BuildLists struct {
	Version uint16
	Lists   []BuildList
}

const buildListsAssetName = "BuildLists"

// ParseBuildLists reads a BuildLists asset. hasAssetList selects the
// faction-identification form used by every nested BuildList.
func ParseBuildLists(c *ParseContext, hasAssetList bool) (*BuildLists, error) {
	bl := &BuildLists{}
	_, err := c.ReadAsset(buildListsAssetName, func(h AssetHeader) error {
		bl.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		bl.Lists = make([]BuildList, count)
		for i := range bl.Lists {
			item, err := ParseBuildList(c, h.Version, hasAssetList)
			if err != nil {
				return err
			}
			bl.Lists[i] = *item
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing BuildLists")
	return bl, nil
}

// Write writes the BuildLists asset.
func (bl *BuildLists) Write(c *WriteContext, hasAssetList bool) error {
	return c.WriteAsset(buildListsAssetName, bl.Version, func() error {
		c.Stream.WriteUint32(uint32(len(bl.Lists)))
		for i := range bl.Lists {
			if err := bl.Lists[i].Write(c, hasAssetList); err != nil {
				return err
			}
		}
		return nil
	})
}

// Player is one side entry within SidesList: a property bag plus its own
// keyed build list items.
type Player struct {
	Properties      *PropertyList
	BuildListItems  []BuildListInfo
}

// ParsePlayer reads one Player record.
func ParsePlayer(c *ParseContext, version uint16, hasAssetList bool) (*Player, error) {
	props, err := c.ParseProperties()
	if err != nil {
		return nil, err
	}
	count, err := c.Stream.ReadUint32()
	if err != nil {
		return nil, err
	}
	items := make([]BuildListInfo, count)
	for i := range items {
		item, err := ParseBuildListInfo(c, version, hasAssetList)
		if err != nil {
			return nil, err
		}
		items[i] = *item
	}
	c.Logger.Debugf("parsed side with %d build list items", len(items))
	return &Player{Properties: props, BuildListItems: items}, nil
}

// Write writes one Player record.
func (p *Player) Write(c *WriteContext, hasAssetList bool) error {
	if err := c.WriteProperties(p.Properties); err != nil {
		return err
	}
	c.Stream.WriteUint32(uint32(len(p.BuildListItems)))
	for i := range p.BuildListItems {
		p.BuildListItems[i].Write(c, hasAssetList)
	}
	return nil
}

// SidesList is the top-level asset listing every player (side). Versions
// < 5 embed Team records inline (read only when version >= 2) instead of
// relying on the separate Teams asset; the trailing while-loop below is a
// deliberately preserved legacy quirk: for version < 5, ANY asset name
// encountered after the team list — including one literally named
// "Team" — is an unconditional parse error. This is not "fixed" here.
type SidesList struct {
	Version  uint16
	Unknown1 bool
	Players  []Player
	// Teams is only ever populated for version < 5; version >= 5 files
	// carry teams in the separate Teams asset instead.
	Teams []Team
}

const sidesListAssetName = "SidesList"

// ParseSidesList reads a SidesList asset.
func ParseSidesList(c *ParseContext, hasAssetList bool) (*SidesList, error) {
	sl := &SidesList{}
	_, err := c.ReadAsset(sidesListAssetName, func(h AssetHeader) error {
		sl.Version = h.Version
		if h.Version >= 6 {
			unk, err := c.Stream.ReadBool()
			if err != nil {
				return err
			}
			sl.Unknown1 = unk
		}

		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		sl.Players = make([]Player, count)
		for i := range sl.Players {
			p, err := ParsePlayer(c, h.Version, hasAssetList)
			if err != nil {
				return err
			}
			sl.Players[i] = *p
		}

		if h.Version >= 5 {
			return nil
		}

		if h.Version >= 2 {
			teamCount, err := c.Stream.ReadUint32()
			if err != nil {
				return err
			}
			sl.Teams = make([]Team, teamCount)
			for i := range sl.Teams {
				t, err := ParseTeam(c)
				if err != nil {
					return err
				}
				sl.Teams[i] = *t
			}
		}

		for c.Stream.Tell() < h.End {
			if _, err := c.ParseAssetName(); err != nil {
				return err
			}
			return ErrSidesListUnexpectedAsset
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing SidesList")
	return sl, nil
}

// Write writes the SidesList asset. The version < 2 team-count write is a
// literal carry-over of the source format's own write/parse asymmetry for
// legacy (version 2-4) files: parsing always reads a count for version >=
// 2, but writing only re-emits one for version < 2.
func (sl *SidesList) Write(c *WriteContext, hasAssetList bool) error {
	return c.WriteAsset(sidesListAssetName, sl.Version, func() error {
		if sl.Version >= 6 {
			c.Stream.WriteBool(sl.Unknown1)
		}
		c.Stream.WriteUint32(uint32(len(sl.Players)))
		for i := range sl.Players {
			if err := sl.Players[i].Write(c, hasAssetList); err != nil {
				return err
			}
		}
		if sl.Version < 5 {
			if sl.Version < 2 {
				c.Stream.WriteUint32(uint32(len(sl.Teams)))
			}
			for i := range sl.Teams {
				if err := sl.Teams[i].Write(c); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
