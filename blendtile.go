// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// TileFlammability is the 4-valued enum a v16..24 flammability byte grid
// decodes into.
type TileFlammability uint8

// Flammability values.
const (
	FireResistant   TileFlammability = 0
	Grass           TileFlammability = 1
	HighlyFlammable TileFlammability = 2
	FlammabilityUndefined TileFlammability = 3
)

// BlendTileTexture names one texture cell range used by the blend grids.
type BlendTileTexture struct {
	CellStart uint32
	CellCount uint32
	CellSize  uint32
	// MagicValue is always 0; round-tripped literally rather than assumed.
	MagicValue uint32
	Name       string
}

// BlendDescription is one blend-transition record. MagicValue1 varies
// across files and is preserved literally; MagicValue2 is invariant
// (0x7ADA0000).
type BlendDescription struct {
	SecondaryTile uint32
	BlendDirection [4]byte
	Flags          uint8
	TwoSided       bool
	MagicValue1    uint32
	MagicValue2    uint32
}

// CliffTextureMapping maps a tile to a cliff texture's four UV corners.
type CliffTextureMapping struct {
	Tile       uint32
	BL, BR, TR, TL Vec2
	Unknown    uint16
}

// BlendTileData is the terrain texture-blending asset: the most
// version-sensitive schema in the format. It requires a previously parsed
// HeightMapData for its grid dimensions (spec §4.6.1).
type BlendTileData struct {
	Version uint16

	Tiles *Grid[uint16]

	Blends            *Grid[uint32]
	ThreeWayBlends    *Grid[uint32]
	CliffTextures     *Grid[uint32]

	// Impassability holds the bits exactly as stored on disk; no inversion
	// is applied on parse or write.
	Impassability           *Grid[bool]
	ImpassabilityToPlayers  *Grid[bool]
	PassageWidths           *Grid[bool]
	Taintability            *Grid[bool]
	ExtraPassability        *Grid[bool]
	Flammability            *Grid[uint8]
	Visibility              *Grid[bool]
	Buildability            *Grid[bool]
	ImpassabilityToAirUnits *Grid[bool]
	TiberiumGrowability     *Grid[bool]
	DynamicShrubberyDensity *Grid[uint8]

	TextureCellCount uint32

	Textures []BlendTileTexture

	// MagicValue1 varies across files and is preserved literally.
	MagicValue1 uint32
	// MagicValue2 must always be 0.
	MagicValue2 uint32

	BlendDescriptions     []BlendDescription
	CliffTextureMappings  []CliffTextureMapping
}

const blendTileDataAssetName = "BlendTileData"

// blendBitSize returns the element width (16 or 32 bits) used by the
// blends/three_way_blends/cliff_textures grids for the given asset version.
func blendBitSize(version uint16) int {
	if version >= 14 && version < 24 {
		return 32
	}
	return 16
}

// blendRawCount/blendActualCount implement the asymmetric +1 on-disk
// convention: a raw on-disk count of 0 means zero records, any positive
// raw count N means N-1 records.
func blendActualCount(raw uint32) int {
	if raw == 0 {
		return 0
	}
	return int(raw - 1)
}

func blendRawCount(n int) uint32 {
	if n == 0 {
		return 0
	}
	return uint32(n + 1)
}

// ParseBlendTileData reads a BlendTileData asset. heightMap supplies the
// grid dimensions; it must be non-nil (spec §4.6.1's cross-asset
// dependency) or ErrBlendTileWithoutHeightMap is returned.
func ParseBlendTileData(c *ParseContext, heightMap *HeightMapData) (*BlendTileData, error) {
	if heightMap == nil {
		return nil, ErrBlendTileWithoutHeightMap
	}
	w, h := int(heightMap.Width), int(heightMap.Height)

	bt := &BlendTileData{}
	_, err := c.ReadAsset(blendTileDataAssetName, func(hdr AssetHeader) error {
		bt.Version = hdr.Version
		bits := blendBitSize(hdr.Version)

		tilesCount, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		if tilesCount != uint32(w*h) {
			return ErrBlendTileTileCountMismatch
		}

		if bt.Tiles, err = c.Stream.ReadUint16Grid(w, h); err != nil {
			return err
		}
		if bt.Blends, err = c.Stream.ReadVarWidthUintGrid(w, h, bits); err != nil {
			return err
		}
		if bt.ThreeWayBlends, err = c.Stream.ReadVarWidthUintGrid(w, h, bits); err != nil {
			return err
		}
		if bt.CliffTextures, err = c.Stream.ReadVarWidthUintGrid(w, h, bits); err != nil {
			return err
		}

		if hdr.Version > 6 {
			diskWidth := w
			if hdr.Version == 7 {
				diskWidth = ((w + 7) / 8) * 8
			}
			if bt.Impassability, err = c.Stream.ReadBoolGridDiskWidth(w, h, diskWidth); err != nil {
				return err
			}
		}
		if hdr.Version >= 10 {
			if bt.ImpassabilityToPlayers, err = c.Stream.ReadBoolGrid(w, h); err != nil {
				return err
			}
		}
		if hdr.Version >= 11 {
			if bt.PassageWidths, err = c.Stream.ReadBoolGrid(w, h); err != nil {
				return err
			}
		}
		if hdr.Version >= 14 && hdr.Version < 25 {
			if bt.Taintability, err = c.Stream.ReadBoolGrid(w, h); err != nil {
				return err
			}
		}
		if hdr.Version >= 15 {
			if bt.ExtraPassability, err = c.Stream.ReadBoolGrid(w, h); err != nil {
				return err
			}
		}
		if hdr.Version >= 16 && hdr.Version < 25 {
			if bt.Flammability, err = c.Stream.ReadByteGrid(w, h); err != nil {
				return err
			}
		}
		if hdr.Version >= 17 {
			if bt.Visibility, err = c.Stream.ReadBoolGrid(w, h); err != nil {
				return err
			}
		}
		if hdr.Version >= 24 {
			if bt.Buildability, err = c.Stream.ReadBoolGrid(w, h); err != nil {
				return err
			}
			if bt.ImpassabilityToAirUnits, err = c.Stream.ReadBoolGrid(w, h); err != nil {
				return err
			}
			if bt.TiberiumGrowability, err = c.Stream.ReadBoolGrid(w, h); err != nil {
				return err
			}
		}
		if hdr.Version >= 25 {
			if bt.DynamicShrubberyDensity, err = c.Stream.ReadByteGrid(w, h); err != nil {
				return err
			}
		}

		if bt.TextureCellCount, err = c.Stream.ReadUint32(); err != nil {
			return err
		}

		blendsRaw, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		cliffRaw, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}

		textureCount, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		bt.Textures = make([]BlendTileTexture, textureCount)
		for i := range bt.Textures {
			t := BlendTileTexture{}
			if t.CellStart, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			if t.CellCount, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			if t.CellSize, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			if t.MagicValue, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			if t.MagicValue != 0 {
				return ErrBlendTextureMagic
			}
			if t.CellSize*t.CellSize != t.CellCount {
				return ErrBlendTextureCellSize
			}
			if t.Name, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
				return err
			}
			bt.Textures[i] = t
		}

		if bt.MagicValue1, err = c.Stream.ReadUint32(); err != nil {
			return err
		}
		if bt.MagicValue2, err = c.Stream.ReadUint32(); err != nil {
			return err
		}
		if bt.MagicValue2 != 0 {
			return ErrBlendTileMagic
		}

		bt.BlendDescriptions = make([]BlendDescription, blendActualCount(blendsRaw))
		for i := range bt.BlendDescriptions {
			d := BlendDescription{}
			if d.SecondaryTile, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			dir, err := c.Stream.ReadUint32()
			if err != nil {
				return err
			}
			d.BlendDirection = [4]byte{byte(dir), byte(dir >> 8), byte(dir >> 16), byte(dir >> 24)}
			if d.Flags, err = c.Stream.ReadUint8(); err != nil {
				return err
			}
			if d.TwoSided, err = c.Stream.ReadBool(); err != nil {
				return err
			}
			if d.MagicValue1, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			if d.MagicValue2, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			if d.MagicValue2 != 0x7ADA0000 {
				return ErrBlendDescriptionMagic
			}
			bt.BlendDescriptions[i] = d
		}

		bt.CliffTextureMappings = make([]CliffTextureMapping, blendActualCount(cliffRaw))
		for i := range bt.CliffTextureMappings {
			m := CliffTextureMapping{}
			if m.Tile, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			if m.BL, err = c.Stream.ReadVector2(); err != nil {
				return err
			}
			if m.BR, err = c.Stream.ReadVector2(); err != nil {
				return err
			}
			if m.TR, err = c.Stream.ReadVector2(); err != nil {
				return err
			}
			if m.TL, err = c.Stream.ReadVector2(); err != nil {
				return err
			}
			if m.Unknown, err = c.Stream.ReadUint16(); err != nil {
				return err
			}
			bt.CliffTextureMappings[i] = m
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing BlendTileData")
	return bt, nil
}

// Write writes the BlendTileData asset.
func (bt *BlendTileData) Write(c *WriteContext) error {
	return c.WriteAsset(blendTileDataAssetName, bt.Version, func() error {
		bits := blendBitSize(bt.Version)
		w, h := bt.Tiles.Width, bt.Tiles.Height

		c.Stream.WriteUint32(uint32(w * h))
		c.Stream.WriteUint16Grid(bt.Tiles)
		c.Stream.WriteVarWidthUintGrid(bt.Blends, bits)
		c.Stream.WriteVarWidthUintGrid(bt.ThreeWayBlends, bits)
		c.Stream.WriteVarWidthUintGrid(bt.CliffTextures, bits)

		if bt.Version > 6 {
			diskWidth := w
			if bt.Version == 7 {
				diskWidth = ((w + 7) / 8) * 8
			}
			c.Stream.WriteBoolGridDiskWidth(bt.Impassability, diskWidth, 0x00)
		}
		if bt.Version >= 10 {
			c.Stream.WriteBoolGrid(bt.ImpassabilityToPlayers, 0x00)
		}
		if bt.Version >= 11 {
			c.Stream.WriteBoolGrid(bt.PassageWidths, 0x00)
		}
		if bt.Version >= 14 && bt.Version < 25 {
			c.Stream.WriteBoolGrid(bt.Taintability, 0x00)
		}
		if bt.Version >= 15 {
			c.Stream.WriteBoolGrid(bt.ExtraPassability, 0x00)
		}
		if bt.Version >= 16 && bt.Version < 25 {
			c.Stream.WriteByteGrid(bt.Flammability)
		}
		if bt.Version >= 17 {
			c.Stream.WriteBoolGrid(bt.Visibility, 0xFF)
		}
		if bt.Version >= 24 {
			c.Stream.WriteBoolGrid(bt.Buildability, 0x00)
			c.Stream.WriteBoolGrid(bt.ImpassabilityToAirUnits, 0x00)
			c.Stream.WriteBoolGrid(bt.TiberiumGrowability, 0x00)
		}
		if bt.Version >= 25 {
			c.Stream.WriteByteGrid(bt.DynamicShrubberyDensity)
		}

		c.Stream.WriteUint32(bt.TextureCellCount)
		c.Stream.WriteUint32(blendRawCount(len(bt.BlendDescriptions)))
		c.Stream.WriteUint32(blendRawCount(len(bt.CliffTextureMappings)))

		c.Stream.WriteUint32(uint32(len(bt.Textures)))
		for _, t := range bt.Textures {
			c.Stream.WriteUint32(t.CellStart)
			c.Stream.WriteUint32(t.CellCount)
			c.Stream.WriteUint32(t.CellSize)
			c.Stream.WriteUint32(t.MagicValue)
			c.Stream.WriteUint16PrefixedAsciiString(t.Name)
		}

		c.Stream.WriteUint32(bt.MagicValue1)
		c.Stream.WriteUint32(bt.MagicValue2)

		for _, d := range bt.BlendDescriptions {
			c.Stream.WriteUint32(d.SecondaryTile)
			dir := uint32(d.BlendDirection[0]) | uint32(d.BlendDirection[1])<<8 |
				uint32(d.BlendDirection[2])<<16 | uint32(d.BlendDirection[3])<<24
			c.Stream.WriteUint32(dir)
			c.Stream.WriteUint8(d.Flags)
			c.Stream.WriteBool(d.TwoSided)
			c.Stream.WriteUint32(d.MagicValue1)
			c.Stream.WriteUint32(d.MagicValue2)
		}

		for _, m := range bt.CliffTextureMappings {
			c.Stream.WriteUint32(m.Tile)
			c.Stream.WriteVector2(m.BL)
			c.Stream.WriteVector2(m.BR)
			c.Stream.WriteVector2(m.TR)
			c.Stream.WriteVector2(m.TL)
			c.Stream.WriteUint16(m.Unknown)
		}

		return nil
	})
}
