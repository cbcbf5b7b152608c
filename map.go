// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/cespare/xxhash/v2"

	"github.com/saferwall/sagemap/log"
)

// Options configures how a Map is opened and parsed.
type Options struct {
	// Mmap memory-maps the backing file instead of reading it fully into
	// memory. By default (false) the file is read with os.ReadFile.
	Mmap bool

	// StrictUnknownAssets makes parsing fail on any asset name with no
	// registered codec. By default (false) unknown assets are captured as
	// SkippedAsset entries and parsing continues.
	StrictUnknownAssets bool

	// Compressor backs the compression envelope (§4.2). Defaults to
	// NewFlateCompressor() when nil.
	Compressor Compressor

	// A custom logger.
	Logger log.Logger
}

// Map is a fully-parsed SAGE map file: one field per top-level asset kind,
// each nil when the asset was absent, plus any unrecognised trailing
// assets captured verbatim.
type Map struct {
	AssetList            *AssetList
	GlobalVersion        *GlobalVersion
	HeightMapData        *HeightMapData
	BlendTileData        *BlendTileData
	WorldInfo            *WorldInfo
	MPPositionList       *MPPositionList
	SidesList            *SidesList
	LibraryMapLists      *LibraryMapLists
	Teams                *Teams
	PlayerScriptsList    *PlayerScriptsList
	BuildLists           *BuildLists
	ObjectsList          *ObjectsList
	PolygonTriggers      *PolygonTriggers
	TriggerAreas         *TriggerAreas
	WaterSettings        *WaterSettings
	FogSettings          *FogSettings
	MissionHotSpots      *MissionHotSpots
	MissionObjectives    *MissionObjectives
	StandingWaterAreas   *StandingWaterAreas
	RiverAreas           *RiverAreas
	StandingWaveAreas    *StandingWaveAreas
	GlobalLighting       *GlobalLighting
	PostEffectsChunk     *PostEffectsChunk
	EnvironmentData      *EnvironmentData
	NamedCameras         *NamedCameras
	CameraAnimationList  *CameraAnimationList
	CastleTemplates      *CastleTemplates
	WaypointsList        *WaypointsList
	SkyboxSettings       *SkyboxSettings

	// SkippedAssets holds any asset encountered with no registered codec,
	// keyed by asset name, preserved as raw bytes for round-trip.
	SkippedAssets map[string]*SkippedAsset

	names        *NameTable
	nameMarker   string
	hadEARHeader bool
	opts         *Options
	logger       *log.Helper

	data mmap.MMap
	f    *os.File
}

// Open reads the map file at path, applying the compression envelope and
// parsing every asset it contains.
func Open(path string, opts *Options) (*Map, error) {
	if opts == nil {
		opts = &Options{}
	}
	m := &Map{opts: opts, SkippedAssets: map[string]*SkippedAsset{}}

	var logger log.Logger
	if opts.Logger == nil {
		logger = log.NewStdLogger(os.Stdout)
		m.logger = log.NewHelper(log.NewFilter(logger, log.FilterLevel(log.LevelError)))
	} else {
		m.logger = log.NewHelper(opts.Logger)
	}

	var raw []byte
	if opts.Mmap {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		data, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			f.Close()
			return nil, err
		}
		m.data = data
		m.f = f
		raw = data
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		raw = data
	}

	if err := m.parseBytes(raw); err != nil {
		return nil, err
	}
	return m, nil
}

// Close releases the Map's backing file, if it memory-mapped one.
func (m *Map) Close() error {
	if m.data != nil {
		_ = m.data.Unmap()
	}
	if m.f != nil {
		return m.f.Close()
	}
	return nil
}

func (m *Map) compressor() Compressor {
	if m.opts != nil && m.opts.Compressor != nil {
		return m.opts.Compressor
	}
	return NewFlateCompressor()
}

func (m *Map) parseBytes(raw []byte) error {
	payload, hadEAR := decompressContainer(raw, m.compressor())
	m.hadEARHeader = hadEAR

	stream := NewStream(payload)
	names, marker, err := stream.ParseNameTable()
	if err != nil {
		return fmt.Errorf("parsing asset name table: %w", err)
	}
	m.names = names
	m.nameMarker = marker

	ctx := NewParseContext(stream, names, m.logger)

	for stream.Tell() < stream.Len() {
		name, err := ctx.ParseAssetName()
		if err != nil {
			return err
		}
		if err := m.parseAsset(ctx, name); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (m *Map) parseAsset(c *ParseContext, name string) error {
	switch name {
	case assetListAssetName:
		v, err := ParseAssetList(c)
		if err != nil {
			return err
		}
		m.AssetList = v
		c.HasAssetList = true
	case globalVersionAssetName:
		v, err := ParseGlobalVersion(c)
		if err != nil {
			return err
		}
		m.GlobalVersion = v
	case heightMapAssetName:
		v, err := ParseHeightMapData(c)
		if err != nil {
			return err
		}
		m.HeightMapData = v
		c.HeightMap = v
	case blendTileDataAssetName:
		v, err := ParseBlendTileData(c, c.HeightMap)
		if err != nil {
			return err
		}
		m.BlendTileData = v
	case worldInfoAssetName:
		v, err := ParseWorldInfo(c)
		if err != nil {
			return err
		}
		m.WorldInfo = v
	case mpPositionListAssetName:
		v, err := ParseMPPositionList(c)
		if err != nil {
			return err
		}
		m.MPPositionList = v
	case sidesListAssetName:
		v, err := ParseSidesList(c, c.HasAssetList)
		if err != nil {
			return err
		}
		m.SidesList = v
	case libraryMapListsAssetName:
		v, err := ParseLibraryMapLists(c)
		if err != nil {
			return err
		}
		m.LibraryMapLists = v
	case teamsAssetName:
		v, err := ParseTeams(c)
		if err != nil {
			return err
		}
		m.Teams = v
	case playerScriptsListAssetName:
		v, err := ParsePlayerScriptsList(c)
		if err != nil {
			return err
		}
		m.PlayerScriptsList = v
	case buildListsAssetName:
		v, err := ParseBuildLists(c, c.HasAssetList)
		if err != nil {
			return err
		}
		m.BuildLists = v
	case objectsListAssetName:
		v, err := ParseObjectsList(c)
		if err != nil {
			return err
		}
		m.ObjectsList = v
	case polygonTriggersAssetName:
		v, err := ParsePolygonTriggers(c)
		if err != nil {
			return err
		}
		m.PolygonTriggers = v
	case triggerAreasAssetName:
		v, err := ParseTriggerAreas(c)
		if err != nil {
			return err
		}
		m.TriggerAreas = v
	case waterSettingsAssetName:
		v, err := ParseWaterSettings(c)
		if err != nil {
			return err
		}
		m.WaterSettings = v
	case fogSettingsAssetName:
		v, err := ParseFogSettings(c)
		if err != nil {
			return err
		}
		m.FogSettings = v
	case missionHotSpotsAssetName:
		v, err := ParseMissionHotSpots(c)
		if err != nil {
			return err
		}
		m.MissionHotSpots = v
	case missionObjectivesAssetName:
		v, err := ParseMissionObjectives(c)
		if err != nil {
			return err
		}
		m.MissionObjectives = v
	case standingWaterAreasAssetName:
		v, err := ParseStandingWaterAreas(c)
		if err != nil {
			return err
		}
		m.StandingWaterAreas = v
	case riverAreasAssetName:
		v, err := ParseRiverAreas(c)
		if err != nil {
			return err
		}
		m.RiverAreas = v
	case standingWaveAreasAssetName:
		v, err := ParseStandingWaveAreas(c)
		if err != nil {
			return err
		}
		m.StandingWaveAreas = v
	case globalLightingAssetName:
		v, err := ParseGlobalLighting(c)
		if err != nil {
			return err
		}
		m.GlobalLighting = v
	case postEffectsChunkAssetName:
		v, err := ParsePostEffectsChunk(c)
		if err != nil {
			return err
		}
		m.PostEffectsChunk = v
	case environmentDataAssetName:
		v, err := ParseEnvironmentData(c)
		if err != nil {
			return err
		}
		m.EnvironmentData = v
	case namedCamerasAssetName:
		v, err := ParseNamedCameras(c)
		if err != nil {
			return err
		}
		m.NamedCameras = v
	case cameraAnimationListAssetName:
		v, err := ParseCameraAnimationList(c)
		if err != nil {
			return err
		}
		m.CameraAnimationList = v
	case castleTemplatesAssetName:
		v, err := ParseCastleTemplates(c)
		if err != nil {
			return err
		}
		m.CastleTemplates = v
	case waypointsListAssetName:
		v, err := ParseWaypointsList(c)
		if err != nil {
			return err
		}
		m.WaypointsList = v
	case skyboxSettingsAssetName:
		v, err := ParseSkyboxSettings(c)
		if err != nil {
			return err
		}
		m.SkyboxSettings = v
	default:
		if m.opts.StrictUnknownAssets {
			return fmt.Errorf("%w: %s", ErrUnknownAsset, name)
		}
		v, err := ParseSkippedAsset(c, name)
		if err != nil {
			return err
		}
		m.SkippedAssets[name] = v
	}
	return nil
}

// Write serialises the Map back to bytes in the fixed canonical asset
// order (spec §4.7), applying the compression envelope when compress is
// true.
func (m *Map) Write(compress bool) ([]byte, error) {
	body := NewWriteStream()
	names := m.names
	if names == nil {
		names = NewNameTable()
	} else {
		names = names.Clone()
	}
	c := NewWriteContext(body, names, m.logger)
	c.HasAssetList = m.AssetList != nil

	if err := m.writeAssets(c); err != nil {
		return nil, err
	}

	out := NewWriteStream()
	marker := m.nameMarker
	if marker == "" {
		marker = "CMP2"
	}
	out.WriteNameTable(marker, names)
	out.WriteRawBytes(body.Bytes())

	if !compress {
		return out.Bytes(), nil
	}
	return compressContainer(out.Bytes(), m.compressor(), m.hadEARHeader)
}

func (m *Map) writeAssets(c *WriteContext) error {
	writeIf := func(name string, present bool, fn func() error) error {
		if !present {
			return nil
		}
		c.WriteAssetName(name)
		return fn()
	}

	steps := []struct {
		name    string
		present bool
		write   func() error
	}{
		{assetListAssetName, m.AssetList != nil, func() error { return m.AssetList.Write(c) }},
		{globalVersionAssetName, m.GlobalVersion != nil, func() error { return m.GlobalVersion.Write(c) }},
		{heightMapAssetName, m.HeightMapData != nil, func() error { return m.HeightMapData.Write(c) }},
		{blendTileDataAssetName, m.BlendTileData != nil, func() error { return m.BlendTileData.Write(c) }},
		{worldInfoAssetName, m.WorldInfo != nil, func() error { return m.WorldInfo.Write(c) }},
		{mpPositionListAssetName, m.MPPositionList != nil, func() error { return m.MPPositionList.Write(c) }},
		{sidesListAssetName, m.SidesList != nil, func() error { return m.SidesList.Write(c, c.HasAssetList) }},
		{libraryMapListsAssetName, m.LibraryMapLists != nil, func() error { return m.LibraryMapLists.Write(c) }},
		{teamsAssetName, m.Teams != nil, func() error { return m.Teams.Write(c) }},
		{playerScriptsListAssetName, m.PlayerScriptsList != nil, func() error { return m.PlayerScriptsList.Write(c) }},
		{buildListsAssetName, m.BuildLists != nil, func() error { return m.BuildLists.Write(c, c.HasAssetList) }},
		{objectsListAssetName, m.ObjectsList != nil, func() error { return m.ObjectsList.Write(c) }},
		{polygonTriggersAssetName, m.PolygonTriggers != nil, func() error { return m.PolygonTriggers.Write(c) }},
		{triggerAreasAssetName, m.TriggerAreas != nil, func() error { return m.TriggerAreas.Write(c) }},
		{waterSettingsAssetName, m.WaterSettings != nil, func() error { return m.WaterSettings.Write(c) }},
		{fogSettingsAssetName, m.FogSettings != nil, func() error { return m.FogSettings.Write(c) }},
		{missionHotSpotsAssetName, m.MissionHotSpots != nil, func() error { return m.MissionHotSpots.Write(c) }},
		{missionObjectivesAssetName, m.MissionObjectives != nil, func() error { return m.MissionObjectives.Write(c) }},
		{standingWaterAreasAssetName, m.StandingWaterAreas != nil, func() error { return m.StandingWaterAreas.Write(c) }},
		{riverAreasAssetName, m.RiverAreas != nil, func() error { return m.RiverAreas.Write(c) }},
		{standingWaveAreasAssetName, m.StandingWaveAreas != nil, func() error { return m.StandingWaveAreas.Write(c) }},
		{globalLightingAssetName, m.GlobalLighting != nil, func() error { return m.GlobalLighting.Write(c) }},
		{postEffectsChunkAssetName, m.PostEffectsChunk != nil, func() error { return m.PostEffectsChunk.Write(c) }},
		{environmentDataAssetName, m.EnvironmentData != nil, func() error { return m.EnvironmentData.Write(c) }},
		{namedCamerasAssetName, m.NamedCameras != nil, func() error { return m.NamedCameras.Write(c) }},
		{cameraAnimationListAssetName, m.CameraAnimationList != nil, func() error { return m.CameraAnimationList.Write(c) }},
		{castleTemplatesAssetName, m.CastleTemplates != nil, func() error { return m.CastleTemplates.Write(c) }},
		{waypointsListAssetName, m.WaypointsList != nil, func() error { return m.WaypointsList.Write(c) }},
		{skyboxSettingsAssetName, m.SkyboxSettings != nil, func() error { return m.SkyboxSettings.Write(c) }},
	}
	for _, s := range steps {
		if err := writeIf(s.name, s.present, s.write); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	for name, sa := range m.SkippedAssets {
		c.WriteAssetName(name)
		sa.Write(c)
	}
	return nil
}

// Fingerprint returns a fast, non-cryptographic content hash of the Map's
// raw on-disk bytes (uncompressed, uncompressed write path). It is a
// diagnostic aid for detecting unintended drift across parse/write cycles
// and plays no role in the round-trip codec itself.
func (m *Map) Fingerprint() (uint64, error) {
	raw, err := m.Write(false)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(raw), nil
}
