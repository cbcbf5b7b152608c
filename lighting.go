// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// TimeOfTheDay selects one of the four lighting configurations
// GlobalLighting carries.
type TimeOfTheDay uint32

// Time-of-day values.
const (
	Morning   TimeOfTheDay = 1
	Afternoon TimeOfTheDay = 2
	Evening   TimeOfTheDay = 3
	Night     TimeOfTheDay = 4
)

// timesOfDay is the fixed iteration order GlobalLighting reads and
// writes its four configurations in.
var timesOfDay = [4]TimeOfTheDay{Morning, Afternoon, Evening, Night}

// MapColorArgb is a packed 32-bit ARGB colour.
type MapColorArgb struct {
	A, R, G, B uint8
}

// ReadMapColorArgb reads a packed ARGB colour.
func (s *Stream) ReadMapColorArgb() (MapColorArgb, error) {
	v, err := s.ReadUint32()
	if err != nil {
		return MapColorArgb{}, err
	}
	return MapColorArgb{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// WriteMapColorArgb writes a packed ARGB colour.
func (s *Stream) WriteMapColorArgb(c MapColorArgb) {
	v := uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	s.WriteUint32(v)
}

// GlobalLight is one directional light: ambient/diffuse colour and
// direction, each a Vec3.
type GlobalLight struct {
	Ambient   Vec3
	Color     Vec3
	Direction Vec3
}

func (s *Stream) readGlobalLight() (GlobalLight, error) {
	var g GlobalLight
	var err error
	if g.Ambient, err = s.ReadVector3(); err != nil {
		return g, err
	}
	if g.Color, err = s.ReadVector3(); err != nil {
		return g, err
	}
	if g.Direction, err = s.ReadVector3(); err != nil {
		return g, err
	}
	return g, nil
}

func (s *Stream) writeGlobalLight(g GlobalLight) {
	s.WriteVector3(g.Ambient)
	s.WriteVector3(g.Color)
	s.WriteVector3(g.Direction)
}

// GlobalLightingConfiguration is the lighting setup for one time of day:
// a terrain sun/accent pair always present, plus object and infantry
// variants that disappear at version >= 10 (infantry only appears from
// version >= 7 in the first place).
type GlobalLightingConfiguration struct {
	TerrainSun    GlobalLight
	ObjectSun     *GlobalLight
	InfantrySun   *GlobalLight
	TerrainAccent1 GlobalLight
	ObjectAccent1  *GlobalLight
	InfantryAccent1 *GlobalLight
	TerrainAccent2 GlobalLight
	ObjectAccent2  *GlobalLight
	InfantryAccent2 *GlobalLight
}

func parseLightingTriple(c *ParseContext, version uint16) (terrain GlobalLight, object, infantry *GlobalLight, err error) {
	if terrain, err = c.Stream.readGlobalLight(); err != nil {
		return
	}
	if version < 10 {
		o, e := c.Stream.readGlobalLight()
		if e != nil {
			err = e
			return
		}
		object = &o
		if version >= 7 {
			inf, e := c.Stream.readGlobalLight()
			if e != nil {
				err = e
				return
			}
			infantry = &inf
		}
	}
	return
}

func writeLightingTriple(c *WriteContext, version uint16, terrain GlobalLight, object, infantry *GlobalLight) {
	c.Stream.writeGlobalLight(terrain)
	if version < 10 {
		c.Stream.writeGlobalLight(*object)
		if version >= 7 {
			c.Stream.writeGlobalLight(*infantry)
		}
	}
}

func parseGlobalLightingConfiguration(c *ParseContext, version uint16) (GlobalLightingConfiguration, error) {
	var cfg GlobalLightingConfiguration
	var err error
	if cfg.TerrainSun, cfg.ObjectSun, cfg.InfantrySun, err = parseLightingTriple(c, version); err != nil {
		return cfg, err
	}
	if cfg.TerrainAccent1, cfg.ObjectAccent1, cfg.InfantryAccent1, err = parseLightingTriple(c, version); err != nil {
		return cfg, err
	}
	if cfg.TerrainAccent2, cfg.ObjectAccent2, cfg.InfantryAccent2, err = parseLightingTriple(c, version); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg GlobalLightingConfiguration) write(c *WriteContext, version uint16) {
	writeLightingTriple(c, version, cfg.TerrainSun, cfg.ObjectSun, cfg.InfantrySun)
	writeLightingTriple(c, version, cfg.TerrainAccent1, cfg.ObjectAccent1, cfg.InfantryAccent1)
	writeLightingTriple(c, version, cfg.TerrainAccent2, cfg.ObjectAccent2, cfg.InfantryAccent2)
}

// GlobalLighting holds the four time-of-day lighting configurations plus
// a handful of version-gated optional trailing blocks.
type GlobalLighting struct {
	Version               uint16
	TimeOfTheDay          TimeOfTheDay
	LightingConfigurations map[TimeOfTheDay]GlobalLightingConfiguration
	ShadowColor           MapColorArgb

	// Unknown is 4 raw bytes for 9 <= version < 11, 44 raw bytes for
	// 7 <= version < 9, and absent otherwise.
	Unknown []byte
	// Unknown2/Unknown3 are present only for version >= 12.
	Unknown2 *Vec3
	Unknown3 *MapColorArgb
	// NoCloudFactor is present only for version >= 8.
	NoCloudFactor *Vec3
}

const globalLightingAssetName = "GlobalLighting"

// ParseGlobalLighting reads a GlobalLighting asset.
func ParseGlobalLighting(c *ParseContext) (*GlobalLighting, error) {
	gl := &GlobalLighting{}
	_, err := c.ReadAsset(globalLightingAssetName, func(h AssetHeader) error {
		gl.Version = h.Version
		t, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		gl.TimeOfTheDay = TimeOfTheDay(t)

		gl.LightingConfigurations = make(map[TimeOfTheDay]GlobalLightingConfiguration, 4)
		for _, tod := range timesOfDay {
			cfg, err := parseGlobalLightingConfiguration(c, h.Version)
			if err != nil {
				return err
			}
			gl.LightingConfigurations[tod] = cfg
		}

		if gl.ShadowColor, err = c.Stream.ReadMapColorArgb(); err != nil {
			return err
		}

		if h.Version >= 7 && h.Version < 11 {
			n := 44
			if h.Version >= 9 {
				n = 4
			}
			if gl.Unknown, err = c.Stream.ReadRawBytes(n); err != nil {
				return err
			}
		}

		if h.Version >= 12 {
			v, err := c.Stream.ReadVector3()
			if err != nil {
				return err
			}
			gl.Unknown2 = &v
			col, err := c.Stream.ReadMapColorArgb()
			if err != nil {
				return err
			}
			gl.Unknown3 = &col
		}

		if h.Version >= 8 {
			v, err := c.Stream.ReadVector3()
			if err != nil {
				return err
			}
			gl.NoCloudFactor = &v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing GlobalLighting")
	return gl, nil
}

// Write writes the GlobalLighting asset.
func (gl *GlobalLighting) Write(c *WriteContext) error {
	return c.WriteAsset(globalLightingAssetName, gl.Version, func() error {
		c.Stream.WriteUint32(uint32(gl.TimeOfTheDay))
		for _, tod := range timesOfDay {
			gl.LightingConfigurations[tod].write(c, gl.Version)
		}
		c.Stream.WriteMapColorArgb(gl.ShadowColor)

		if gl.Version >= 7 && gl.Version < 11 {
			c.Stream.WriteRawBytes(gl.Unknown)
		}
		if gl.Version >= 12 {
			c.Stream.WriteVector3(*gl.Unknown2)
			c.Stream.WriteMapColorArgb(*gl.Unknown3)
		}
		if gl.Version >= 8 {
			c.Stream.WriteVector3(*gl.NoCloudFactor)
		}
		return nil
	})
}
