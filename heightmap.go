// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// HeightMapBorder is one terrain border rectangle. Corner1 is only present
// on disk for version >= 6; earlier versions default it to (0, 0).
type HeightMapBorder struct {
	Corner1X, Corner1Y uint32
	X, Y               uint32
}

// HeightMapData holds the terrain elevation grid and its border list.
// BlendTileData has no embedded dimensions of its own: it inherits Width
// and Height from the most recently parsed HeightMapData (spec §4.6.1).
type HeightMapData struct {
	Version      uint16
	Width        uint32
	Height       uint32
	BorderWidth  uint32
	Borders      []HeightMapBorder
	Area         uint32
	Elevations   *Grid[uint16]
	MinHeight    uint16
	MaxHeight    uint16
}

const heightMapAssetName = "HeightMapData"

// ParseHeightMapData reads a HeightMapData asset.
func ParseHeightMapData(c *ParseContext) (*HeightMapData, error) {
	hm := &HeightMapData{}
	_, err := c.ReadAsset(heightMapAssetName, func(h AssetHeader) error {
		hm.Version = h.Version

		var err error
		if hm.Width, err = c.Stream.ReadUint32(); err != nil {
			return err
		}
		if hm.Height, err = c.Stream.ReadUint32(); err != nil {
			return err
		}
		if hm.BorderWidth, err = c.Stream.ReadUint32(); err != nil {
			return err
		}

		borderCount, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		hm.Borders = make([]HeightMapBorder, borderCount)
		for i := range hm.Borders {
			b := HeightMapBorder{}
			if h.Version >= 6 {
				if b.Corner1X, err = c.Stream.ReadUint32(); err != nil {
					return err
				}
				if b.Corner1Y, err = c.Stream.ReadUint32(); err != nil {
					return err
				}
			}
			if b.X, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			if b.Y, err = c.Stream.ReadUint32(); err != nil {
				return err
			}
			hm.Borders[i] = b
		}

		if hm.Area, err = c.Stream.ReadUint32(); err != nil {
			return err
		}
		if hm.Area != hm.Width*hm.Height {
			return ErrHeightMapAreaMismatch
		}

		hm.Elevations = NewGrid[uint16](int(hm.Width), int(hm.Height))
		hm.MinHeight, hm.MaxHeight = 0xFFFF, 0
		for y := 0; y < int(hm.Height); y++ {
			for x := 0; x < int(hm.Width); x++ {
				var v uint16
				if h.Version >= 5 {
					v, err = c.Stream.ReadUint16()
				} else {
					var b uint8
					b, err = c.Stream.ReadUint8()
					v = uint16(b)
				}
				if err != nil {
					return err
				}
				hm.Elevations.Set(x, y, v)
				if v < hm.MinHeight {
					hm.MinHeight = v
				}
				if v > hm.MaxHeight {
					hm.MaxHeight = v
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing HeightMapData")
	c.HeightMap = hm
	return hm, nil
}

// Write writes the HeightMapData asset. MinHeight/MaxHeight are derived
// during parse and are not part of the on-disk form: Write neither emits
// nor recomputes them.
func (hm *HeightMapData) Write(c *WriteContext) error {
	return c.WriteAsset(heightMapAssetName, hm.Version, func() error {
		c.Stream.WriteUint32(hm.Width)
		c.Stream.WriteUint32(hm.Height)
		c.Stream.WriteUint32(hm.BorderWidth)
		c.Stream.WriteUint32(uint32(len(hm.Borders)))
		for _, b := range hm.Borders {
			if hm.Version >= 6 {
				c.Stream.WriteUint32(b.Corner1X)
				c.Stream.WriteUint32(b.Corner1Y)
			}
			c.Stream.WriteUint32(b.X)
			c.Stream.WriteUint32(b.Y)
		}
		c.Stream.WriteUint32(hm.Area)
		for y := 0; y < int(hm.Height); y++ {
			for x := 0; x < int(hm.Width); x++ {
				v := hm.Elevations.At(x, y)
				if hm.Version >= 5 {
					c.Stream.WriteUint16(v)
				} else {
					c.Stream.WriteUint8(uint8(v))
				}
			}
		}
		return nil
	})
}
