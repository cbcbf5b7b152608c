// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// AssetListItem names one asset type/instance pair the map file declares
// up front.
type AssetListItem struct {
	TypeID     uint32
	InstanceID uint32
}

func parseAssetListItem(c *ParseContext) (AssetListItem, error) {
	var item AssetListItem
	var err error
	if item.TypeID, err = c.Stream.ReadUint32(); err != nil {
		return item, err
	}
	if item.InstanceID, err = c.Stream.ReadUint32(); err != nil {
		return item, err
	}
	return item, nil
}

func (item AssetListItem) write(c *WriteContext) {
	c.Stream.WriteUint32(item.TypeID)
	c.Stream.WriteUint32(item.InstanceID)
}

// AssetList is the optional leading catalogue of asset type/instance IDs;
// its presence toggles how SidesList and BuildLists parse player/team
// records further down the file.
type AssetList struct {
	Version    uint16
	AssetNames []AssetListItem
}

const assetListAssetName = "AssetList"

// ParseAssetList reads an AssetList asset.
func ParseAssetList(c *ParseContext) (*AssetList, error) {
	al := &AssetList{}
	_, err := c.ReadAsset(assetListAssetName, func(h AssetHeader) error {
		al.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		al.AssetNames = make([]AssetListItem, count)
		for i := range al.AssetNames {
			if al.AssetNames[i], err = parseAssetListItem(c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing AssetList")
	return al, nil
}

// Write writes the AssetList asset.
func (al *AssetList) Write(c *WriteContext) error {
	return c.WriteAsset(assetListAssetName, al.Version, func() error {
		c.Stream.WriteUint32(uint32(len(al.AssetNames)))
		for _, item := range al.AssetNames {
			item.write(c)
		}
		return nil
	})
}

// GlobalVersion is an empty marker asset carrying only its own version
// number.
type GlobalVersion struct {
	Version uint16
}

const globalVersionAssetName = "GlobalVersion"

// ParseGlobalVersion reads a GlobalVersion asset.
func ParseGlobalVersion(c *ParseContext) (*GlobalVersion, error) {
	gv := &GlobalVersion{}
	_, err := c.ReadAsset(globalVersionAssetName, func(h AssetHeader) error {
		gv.Version = h.Version
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing GlobalVersion")
	return gv, nil
}

// Write writes the GlobalVersion asset.
func (gv *GlobalVersion) Write(c *WriteContext) error {
	return c.WriteAsset(globalVersionAssetName, gv.Version, func() error { return nil })
}

// WorldInfo is a freeform property bag describing map-wide settings.
type WorldInfo struct {
	Version    uint16
	Properties *PropertyList
}

const worldInfoAssetName = "WorldInfo"

// ParseWorldInfo reads a WorldInfo asset.
func ParseWorldInfo(c *ParseContext) (*WorldInfo, error) {
	wi := &WorldInfo{}
	_, err := c.ReadAsset(worldInfoAssetName, func(h AssetHeader) error {
		wi.Version = h.Version
		props, err := c.ParseProperties()
		if err != nil {
			return err
		}
		wi.Properties = props
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing WorldInfo")
	return wi, nil
}

// Write writes the WorldInfo asset.
func (wi *WorldInfo) Write(c *WriteContext) error {
	return c.WriteAsset(worldInfoAssetName, wi.Version, func() error {
		return c.WriteProperties(wi.Properties)
	})
}

// Object is one placed map object: a position, orientation, road type, the
// name of its template, and a freeform property bag.
type Object struct {
	Version    uint16
	Position   Vec3
	Angle      float32
	RoadType   uint32
	TypeName   string
	Properties *PropertyList
}

const objectAssetName = "Object"

// ParseObject reads one Object record.
func ParseObject(c *ParseContext) (*Object, error) {
	o := &Object{}
	_, err := c.ReadAsset(objectAssetName, func(h AssetHeader) error {
		o.Version = h.Version
		var err error
		if o.Position, err = c.Stream.ReadVector3(); err != nil {
			return err
		}
		if o.Angle, err = c.Stream.ReadFloat(); err != nil {
			return err
		}
		if o.RoadType, err = c.Stream.ReadUint32(); err != nil {
			return err
		}
		if o.TypeName, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		props, err := c.ParseProperties()
		if err != nil {
			return err
		}
		o.Properties = props
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing Object %s", o.TypeName)
	return o, nil
}

// Write writes one Object record.
func (o *Object) Write(c *WriteContext) error {
	return c.WriteAsset(objectAssetName, o.Version, func() error {
		c.Stream.WriteVector3(o.Position)
		c.Stream.WriteFloat(o.Angle)
		c.Stream.WriteUint32(o.RoadType)
		c.Stream.WriteUint16PrefixedAsciiString(o.TypeName)
		return c.WriteProperties(o.Properties)
	})
}

// ObjectsList is the top-level asset listing every placed Object.
type ObjectsList struct {
	Version uint16
	Objects []Object
}

const objectsListAssetName = "ObjectsList"

// ParseObjectsList reads an ObjectsList asset.
func ParseObjectsList(c *ParseContext) (*ObjectsList, error) {
	ol := &ObjectsList{}
	_, err := c.ReadAsset(objectsListAssetName, func(h AssetHeader) error {
		ol.Version = h.Version
		for c.Stream.Tell() < h.End {
			name, err := c.ParseAssetName()
			if err != nil {
				return err
			}
			if name != objectAssetName {
				return ErrUnexpectedAssetName
			}
			o, err := ParseObject(c)
			if err != nil {
				return err
			}
			ol.Objects = append(ol.Objects, *o)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing ObjectsList, %d objects", len(ol.Objects))
	return ol, nil
}

// Write writes the ObjectsList asset.
func (ol *ObjectsList) Write(c *WriteContext) error {
	return c.WriteAsset(objectsListAssetName, ol.Version, func() error {
		for i := range ol.Objects {
			c.WriteAssetName(objectAssetName)
			if err := ol.Objects[i].Write(c); err != nil {
				return err
			}
		}
		return nil
	})
}

// MPPosition is one multiplayer start position slot.
type MPPosition struct {
	Version          uint16
	IsHuman          bool
	IsComputer       bool
	LoadAIScript     bool
	Team             uint32
	SideRestrictions []string
}

const mpPositionAssetName = "MPPositionInfo"

// ParseMPPosition reads one MPPositionInfo record.
func ParseMPPosition(c *ParseContext) (*MPPosition, error) {
	p := &MPPosition{}
	_, err := c.ReadAsset(mpPositionAssetName, func(h AssetHeader) error {
		p.Version = h.Version
		var err error
		if p.IsHuman, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if p.IsComputer, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if h.Version > 0 {
			if p.LoadAIScript, err = c.Stream.ReadBool(); err != nil {
				return err
			}
		}
		if p.Team, err = c.Stream.ReadUint32(); err != nil {
			return err
		}
		if h.Version > 0 {
			count, err := c.Stream.ReadUint32()
			if err != nil {
				return err
			}
			p.SideRestrictions = make([]string, count)
			for i := range p.SideRestrictions {
				if p.SideRestrictions[i], err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Write writes one MPPositionInfo record.
func (p *MPPosition) Write(c *WriteContext) error {
	return c.WriteAsset(mpPositionAssetName, p.Version, func() error {
		c.Stream.WriteBool(p.IsHuman)
		c.Stream.WriteBool(p.IsComputer)
		if p.Version > 0 {
			c.Stream.WriteBool(p.LoadAIScript)
		}
		c.Stream.WriteUint32(p.Team)
		if p.Version > 0 {
			c.Stream.WriteUint32(uint32(len(p.SideRestrictions)))
			for _, r := range p.SideRestrictions {
				c.Stream.WriteUint16PrefixedAsciiString(r)
			}
		}
		return nil
	})
}

// MPPositionList is the top-level asset listing every multiplayer start
// position.
type MPPositionList struct {
	Version   uint16
	Positions []MPPosition
}

const mpPositionListAssetName = "MPPositionList"

// ParseMPPositionList reads an MPPositionList asset.
func ParseMPPositionList(c *ParseContext) (*MPPositionList, error) {
	l := &MPPositionList{}
	_, err := c.ReadAsset(mpPositionListAssetName, func(h AssetHeader) error {
		l.Version = h.Version
		for c.Stream.Tell() < h.End {
			name, err := c.ParseAssetName()
			if err != nil {
				return err
			}
			if name != mpPositionAssetName {
				return ErrUnexpectedAssetName
			}
			p, err := ParseMPPosition(c)
			if err != nil {
				return err
			}
			l.Positions = append(l.Positions, *p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing MPPositionList, %d positions", len(l.Positions))
	return l, nil
}

// Write writes the MPPositionList asset.
func (l *MPPositionList) Write(c *WriteContext) error {
	return c.WriteAsset(mpPositionListAssetName, l.Version, func() error {
		for i := range l.Positions {
			c.WriteAssetName(mpPositionAssetName)
			if err := l.Positions[i].Write(c); err != nil {
				return err
			}
		}
		return nil
	})
}

// WaypointsList is a list of start/end waypoint-ID path edges connecting
// Waypoint objects placed elsewhere in ObjectsList.
type WaypointsList struct {
	Version        uint16
	WaypointPaths  [][2]uint32
}

const waypointsListAssetName = "WaypointsList"

// ParseWaypointsList reads a WaypointsList asset.
func ParseWaypointsList(c *ParseContext) (*WaypointsList, error) {
	wl := &WaypointsList{}
	_, err := c.ReadAsset(waypointsListAssetName, func(h AssetHeader) error {
		wl.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		wl.WaypointPaths = make([][2]uint32, count)
		for i := range wl.WaypointPaths {
			start, err := c.Stream.ReadUint32()
			if err != nil {
				return err
			}
			end, err := c.Stream.ReadUint32()
			if err != nil {
				return err
			}
			wl.WaypointPaths[i] = [2]uint32{start, end}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing WaypointsList, %d paths", len(wl.WaypointPaths))
	return wl, nil
}

// Write writes the WaypointsList asset.
func (wl *WaypointsList) Write(c *WriteContext) error {
	return c.WriteAsset(waypointsListAssetName, wl.Version, func() error {
		c.Stream.WriteUint32(uint32(len(wl.WaypointPaths)))
		for _, pair := range wl.WaypointPaths {
			c.Stream.WriteUint32(pair[0])
			c.Stream.WriteUint32(pair[1])
		}
		return nil
	})
}

// LibraryMaps is one named set of library map file references.
type LibraryMaps struct {
	Version uint16
	Values  []string
}

const libraryMapsAssetName = "LibraryMaps"

// ParseLibraryMaps reads one LibraryMaps record.
func ParseLibraryMaps(c *ParseContext) (*LibraryMaps, error) {
	lm := &LibraryMaps{}
	_, err := c.ReadAsset(libraryMapsAssetName, func(h AssetHeader) error {
		lm.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		lm.Values = make([]string, count)
		for i := range lm.Values {
			if lm.Values[i], err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lm, nil
}

// Write writes one LibraryMaps record.
func (lm *LibraryMaps) Write(c *WriteContext) error {
	return c.WriteAsset(libraryMapsAssetName, lm.Version, func() error {
		c.Stream.WriteUint32(uint32(len(lm.Values)))
		for _, v := range lm.Values {
			c.Stream.WriteUint16PrefixedAsciiString(v)
		}
		return nil
	})
}

// LibraryMapLists is the top-level asset listing every LibraryMaps set.
type LibraryMapLists struct {
	Version uint16
	Lists   []LibraryMaps
}

const libraryMapListsAssetName = "LibraryMapLists"

// ParseLibraryMapLists reads a LibraryMapLists asset.
func ParseLibraryMapLists(c *ParseContext) (*LibraryMapLists, error) {
	ll := &LibraryMapLists{}
	_, err := c.ReadAsset(libraryMapListsAssetName, func(h AssetHeader) error {
		ll.Version = h.Version
		for c.Stream.Tell() < h.End {
			name, err := c.ParseAssetName()
			if err != nil {
				return err
			}
			if name != libraryMapsAssetName {
				return ErrUnexpectedAssetName
			}
			lm, err := ParseLibraryMaps(c)
			if err != nil {
				return err
			}
			ll.Lists = append(ll.Lists, *lm)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing LibraryMapLists, %d lists", len(ll.Lists))
	return ll, nil
}

// Write writes the LibraryMapLists asset.
func (ll *LibraryMapLists) Write(c *WriteContext) error {
	return c.WriteAsset(libraryMapListsAssetName, ll.Version, func() error {
		for i := range ll.Lists {
			c.WriteAssetName(libraryMapsAssetName)
			if err := ll.Lists[i].Write(c); err != nil {
				return err
			}
		}
		return nil
	})
}

// WaterSettings holds the global water reflection toggle. Its wire name,
// "GlobalWaterSettings", deliberately does not match the Go type name.
type WaterSettings struct {
	Version           uint16
	ReflectionOn      bool
	ReflectionPlaneZ  float32
}

const waterSettingsAssetName = "GlobalWaterSettings"

// ParseWaterSettings reads a GlobalWaterSettings asset.
func ParseWaterSettings(c *ParseContext) (*WaterSettings, error) {
	ws := &WaterSettings{}
	_, err := c.ReadAsset(waterSettingsAssetName, func(h AssetHeader) error {
		ws.Version = h.Version
		var err error
		if ws.ReflectionOn, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if ws.ReflectionPlaneZ, err = c.Stream.ReadFloat(); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing GlobalWaterSettings")
	return ws, nil
}

// Write writes the GlobalWaterSettings asset.
func (ws *WaterSettings) Write(c *WriteContext) error {
	return c.WriteAsset(waterSettingsAssetName, ws.Version, func() error {
		c.Stream.WriteBool(ws.ReflectionOn)
		c.Stream.WriteFloat(ws.ReflectionPlaneZ)
		return nil
	})
}

// FogSettings carries a single unexplained field; no write method existed
// in the retrieved source, so Write here mirrors the parse field order.
type FogSettings struct {
	Version uint16
	Unknown uint32
}

const fogSettingsAssetName = "FogSettings"

// ParseFogSettings reads a FogSettings asset.
func ParseFogSettings(c *ParseContext) (*FogSettings, error) {
	fs := &FogSettings{}
	_, err := c.ReadAsset(fogSettingsAssetName, func(h AssetHeader) error {
		fs.Version = h.Version
		var err error
		fs.Unknown, err = c.Stream.ReadUint32()
		return err
	})
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// Write writes the FogSettings asset.
func (fs *FogSettings) Write(c *WriteContext) error {
	return c.WriteAsset(fogSettingsAssetName, fs.Version, func() error {
		c.Stream.WriteUint32(fs.Unknown)
		return nil
	})
}

// MissionHotSpot is one named, player-facing map region description.
type MissionHotSpot struct {
	ID          string
	Title       string
	Description string
}

func parseMissionHotSpot(c *ParseContext) (MissionHotSpot, error) {
	var h MissionHotSpot
	var err error
	if h.ID, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return h, err
	}
	if h.Title, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return h, err
	}
	if h.Description, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return h, err
	}
	return h, nil
}

func (h MissionHotSpot) write(c *WriteContext) {
	c.Stream.WriteUint16PrefixedAsciiString(h.ID)
	c.Stream.WriteUint16PrefixedAsciiString(h.Title)
	c.Stream.WriteUint16PrefixedAsciiString(h.Description)
}

// MissionHotSpots is the top-level asset listing every MissionHotSpot.
type MissionHotSpots struct {
	Version   uint16
	HotSpots  []MissionHotSpot
}

const missionHotSpotsAssetName = "MissionHotSpots"

// ParseMissionHotSpots reads a MissionHotSpots asset.
func ParseMissionHotSpots(c *ParseContext) (*MissionHotSpots, error) {
	mhs := &MissionHotSpots{}
	_, err := c.ReadAsset(missionHotSpotsAssetName, func(h AssetHeader) error {
		mhs.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		mhs.HotSpots = make([]MissionHotSpot, count)
		for i := range mhs.HotSpots {
			if mhs.HotSpots[i], err = parseMissionHotSpot(c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mhs, nil
}

// Write writes the MissionHotSpots asset.
func (mhs *MissionHotSpots) Write(c *WriteContext) error {
	return c.WriteAsset(missionHotSpotsAssetName, mhs.Version, func() error {
		c.Stream.WriteUint32(uint32(len(mhs.HotSpots)))
		for _, h := range mhs.HotSpots {
			h.write(c)
		}
		return nil
	})
}

// MissionObjectiveType classifies a MissionObjective.
type MissionObjectiveType uint32

// Recognised mission objective types.
const (
	MissionObjectiveAttack   MissionObjectiveType = 0
	MissionObjectiveUnknown1 MissionObjectiveType = 1
	MissionObjectiveUnknown2 MissionObjectiveType = 2
	MissionObjectiveBuild    MissionObjectiveType = 3
	MissionObjectiveCapture  MissionObjectiveType = 4
	MissionObjectiveProtect  MissionObjectiveType = 5
)

// MissionObjective is one player-facing mission goal.
type MissionObjective struct {
	ID               string
	Text             string
	Description      string
	IsBonusObjective bool
	ObjectiveType    MissionObjectiveType
}

func parseMissionObjective(c *ParseContext) (MissionObjective, error) {
	var o MissionObjective
	var err error
	if o.ID, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return o, err
	}
	if o.Text, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return o, err
	}
	if o.Description, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return o, err
	}
	if o.IsBonusObjective, err = c.Stream.ReadBool(); err != nil {
		return o, err
	}
	t, err := c.Stream.ReadUint32()
	if err != nil {
		return o, err
	}
	o.ObjectiveType = MissionObjectiveType(t)
	return o, nil
}

func (o MissionObjective) write(c *WriteContext) {
	c.Stream.WriteUint16PrefixedAsciiString(o.ID)
	c.Stream.WriteUint16PrefixedAsciiString(o.Text)
	c.Stream.WriteUint16PrefixedAsciiString(o.Description)
	c.Stream.WriteBool(o.IsBonusObjective)
	c.Stream.WriteUint32(uint32(o.ObjectiveType))
}

// MissionObjectives is the top-level asset listing every MissionObjective.
type MissionObjectives struct {
	Version    uint16
	Objectives []MissionObjective
}

const missionObjectivesAssetName = "MissionObjectives"

// ParseMissionObjectives reads a MissionObjectives asset.
func ParseMissionObjectives(c *ParseContext) (*MissionObjectives, error) {
	mo := &MissionObjectives{}
	_, err := c.ReadAsset(missionObjectivesAssetName, func(h AssetHeader) error {
		mo.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		mo.Objectives = make([]MissionObjective, count)
		for i := range mo.Objectives {
			if mo.Objectives[i], err = parseMissionObjective(c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mo, nil
}

// Write writes the MissionObjectives asset.
func (mo *MissionObjectives) Write(c *WriteContext) error {
	return c.WriteAsset(missionObjectivesAssetName, mo.Version, func() error {
		c.Stream.WriteUint32(uint32(len(mo.Objectives)))
		for _, o := range mo.Objectives {
			o.write(c)
		}
		return nil
	})
}

// EnvironmentData carries global rendering texture references. No write
// method existed in the retrieved source; Write here mirrors the parse
// field order exactly. UnknownTexture2's presence depends on both a
// version gate and remaining bytes in the asset body, a quirk preserved
// as-is.
type EnvironmentData struct {
	Version                 uint16
	WaterMaxAlphaDepth      *float32
	DeepWaterAlpha          *float32
	IsMacroTextureStretched *bool
	MacroTexture            string
	CloudTexture            string
	UnknownTexture          *string
	UnknownTexture2         *string
}

const environmentDataAssetName = "EnvironmentData"

// ParseEnvironmentData reads an EnvironmentData asset.
func ParseEnvironmentData(c *ParseContext) (*EnvironmentData, error) {
	ed := &EnvironmentData{}
	_, err := c.ReadAsset(environmentDataAssetName, func(h AssetHeader) error {
		ed.Version = h.Version
		if h.Version >= 3 {
			v, err := c.Stream.ReadFloat()
			if err != nil {
				return err
			}
			ed.WaterMaxAlphaDepth = &v
			d, err := c.Stream.ReadFloat()
			if err != nil {
				return err
			}
			ed.DeepWaterAlpha = &d
		}
		if h.Version < 5 {
			b, err := c.Stream.ReadBool()
			if err != nil {
				return err
			}
			ed.IsMacroTextureStretched = &b
		}
		var err error
		if ed.MacroTexture, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		if ed.CloudTexture, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		if h.Version >= 4 {
			t, err := c.Stream.ReadUint16PrefixedAsciiString()
			if err != nil {
				return err
			}
			ed.UnknownTexture = &t
		}
		if h.Version >= 6 && c.Stream.Tell() < h.End {
			t, err := c.Stream.ReadUint16PrefixedAsciiString()
			if err != nil {
				return err
			}
			ed.UnknownTexture2 = &t
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing EnvironmentData")
	return ed, nil
}

// Write writes the EnvironmentData asset.
func (ed *EnvironmentData) Write(c *WriteContext) error {
	return c.WriteAsset(environmentDataAssetName, ed.Version, func() error {
		if ed.Version >= 3 {
			c.Stream.WriteFloat(*ed.WaterMaxAlphaDepth)
			c.Stream.WriteFloat(*ed.DeepWaterAlpha)
		}
		if ed.Version < 5 {
			c.Stream.WriteBool(*ed.IsMacroTextureStretched)
		}
		c.Stream.WriteUint16PrefixedAsciiString(ed.MacroTexture)
		c.Stream.WriteUint16PrefixedAsciiString(ed.CloudTexture)
		if ed.Version >= 4 {
			c.Stream.WriteUint16PrefixedAsciiString(*ed.UnknownTexture)
		}
		if ed.Version >= 6 && ed.UnknownTexture2 != nil {
			c.Stream.WriteUint16PrefixedAsciiString(*ed.UnknownTexture2)
		}
		return nil
	})
}

// SkyboxSettings positions and scales the rendered skybox. No write method
// existed in the retrieved source; Write here mirrors the parse field
// order exactly.
type SkyboxSettings struct {
	Version       uint16
	Position      Vec3
	Scale         float32
	Rotation      float32
	TextureScheme string
}

const skyboxSettingsAssetName = "SkyboxSettings"

// ParseSkyboxSettings reads a SkyboxSettings asset.
func ParseSkyboxSettings(c *ParseContext) (*SkyboxSettings, error) {
	sb := &SkyboxSettings{}
	_, err := c.ReadAsset(skyboxSettingsAssetName, func(h AssetHeader) error {
		sb.Version = h.Version
		var err error
		if sb.Position, err = c.Stream.ReadVector3(); err != nil {
			return err
		}
		if sb.Scale, err = c.Stream.ReadFloat(); err != nil {
			return err
		}
		if sb.Rotation, err = c.Stream.ReadFloat(); err != nil {
			return err
		}
		if sb.TextureScheme, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sb, nil
}

// Write writes the SkyboxSettings asset.
func (sb *SkyboxSettings) Write(c *WriteContext) error {
	return c.WriteAsset(skyboxSettingsAssetName, sb.Version, func() error {
		c.Stream.WriteVector3(sb.Position)
		c.Stream.WriteFloat(sb.Scale)
		c.Stream.WriteFloat(sb.Rotation)
		c.Stream.WriteUint16PrefixedAsciiString(sb.TextureScheme)
		return nil
	})
}

// SkippedAsset is the raw-bytes fallback for any asset name the orchestrator
// is configured not to decode: it preserves the header and body verbatim
// so the file can still round-trip byte-exact.
type SkippedAsset struct {
	Name     string
	Version  uint16
	DataSize uint32
	Data     []byte
}

// ParseSkippedAsset reads a SkippedAsset's own header and raw body; unlike
// every other asset codec it does not go through ReadAsset, since it is
// the fallback invoked when the caller has already consumed the asset
// name but does not know how to decode what follows.
func ParseSkippedAsset(c *ParseContext, name string) (*SkippedAsset, error) {
	sa := &SkippedAsset{Name: name}
	var err error
	if sa.Version, err = c.Stream.ReadUint16(); err != nil {
		return nil, err
	}
	if sa.DataSize, err = c.Stream.ReadUint32(); err != nil {
		return nil, err
	}
	if sa.Data, err = c.Stream.ReadRawBytes(int(sa.DataSize)); err != nil {
		return nil, err
	}
	c.Logger.Debugf("skipped asset: %s, version: %d, size: %d", name, sa.Version, sa.DataSize)
	return sa, nil
}

// Write writes a SkippedAsset's raw header and body verbatim.
func (sa *SkippedAsset) Write(c *WriteContext) {
	c.Stream.WriteUint16(sa.Version)
	c.Stream.WriteUint32(sa.DataSize)
	c.Stream.WriteRawBytes(sa.Data)
}
