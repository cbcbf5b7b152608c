// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// CastleTemplate is one pre-built castle placement: a name, the building
// template it instantiates, and a placement offset/angle. Priority/Phase
// only exist from version >= 4.
type CastleTemplate struct {
	Name         string
	TemplateName string
	Offset       Vec3
	Angle        float32
	Priority     *uint32
	Phase        *uint32
}

func parseCastleTemplate(c *ParseContext, version uint16) (CastleTemplate, error) {
	var t CastleTemplate
	var err error
	if t.Name, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return t, err
	}
	if t.TemplateName, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return t, err
	}
	if t.Offset, err = c.Stream.ReadVector3(); err != nil {
		return t, err
	}
	if t.Angle, err = c.Stream.ReadFloat(); err != nil {
		return t, err
	}
	if version >= 4 {
		p, err := c.Stream.ReadUint32()
		if err != nil {
			return t, err
		}
		t.Priority = &p
		ph, err := c.Stream.ReadUint32()
		if err != nil {
			return t, err
		}
		t.Phase = &ph
	}
	return t, nil
}

func (t CastleTemplate) write(c *WriteContext, version uint16) {
	c.Stream.WriteUint16PrefixedAsciiString(t.Name)
	c.Stream.WriteUint16PrefixedAsciiString(t.TemplateName)
	c.Stream.WriteVector3(t.Offset)
	c.Stream.WriteFloat(t.Angle)
	if version >= 4 {
		c.Stream.WriteUint32(*t.Priority)
		c.Stream.WriteUint32(*t.Phase)
	}
}

// PerimeterPoint is one point of a CastlePerimeter's boundary, stored as
// two floats (Z implicitly 0) from version >= 3, or three legacy int32s.
type PerimeterPoint struct {
	X, Y, Z float32
}

func parsePerimeterPoint(c *ParseContext, version uint16) (PerimeterPoint, error) {
	var p PerimeterPoint
	if version >= 3 {
		x, err := c.Stream.ReadFloat()
		if err != nil {
			return p, err
		}
		y, err := c.Stream.ReadFloat()
		if err != nil {
			return p, err
		}
		p.X, p.Y = x, y
		return p, nil
	}
	x, err := c.Stream.ReadInt32()
	if err != nil {
		return p, err
	}
	y, err := c.Stream.ReadInt32()
	if err != nil {
		return p, err
	}
	z, err := c.Stream.ReadInt32()
	if err != nil {
		return p, err
	}
	p.X, p.Y, p.Z = float32(x), float32(y), float32(z)
	return p, nil
}

func (p PerimeterPoint) write(c *WriteContext, version uint16) {
	if version >= 3 {
		c.Stream.WriteFloat(p.X)
		c.Stream.WriteFloat(p.Y)
		return
	}
	c.Stream.WriteInt32(int32(p.X))
	c.Stream.WriteInt32(int32(p.Y))
	c.Stream.WriteInt32(int32(p.Z))
}

// CastlePerimeter is the optional boundary fence around a castle template
// set. HasPerimeter gates whether Name/Points are meaningful.
type CastlePerimeter struct {
	HasPerimeter bool
	Name         *string
	Points       []PerimeterPoint
}

func parseCastlePerimeter(c *ParseContext, version uint16) (CastlePerimeter, error) {
	var p CastlePerimeter
	has, err := c.Stream.ReadBoolUint32Checked()
	if err != nil {
		return p, err
	}
	p.HasPerimeter = has
	if !has {
		return p, nil
	}
	name, err := c.Stream.ReadUint16PrefixedAsciiString()
	if err != nil {
		return p, err
	}
	p.Name = &name
	count, err := c.Stream.ReadUint32()
	if err != nil {
		return p, err
	}
	p.Points = make([]PerimeterPoint, count)
	for i := range p.Points {
		if p.Points[i], err = parsePerimeterPoint(c, version); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (p CastlePerimeter) write(c *WriteContext, version uint16) error {
	c.Stream.WriteBoolUint32Checked(p.HasPerimeter)
	if !p.HasPerimeter {
		return nil
	}
	if p.Name == nil {
		return ErrCastlePerimeterMissingName
	}
	c.Stream.WriteUint16PrefixedAsciiString(*p.Name)
	c.Stream.WriteUint32(uint32(len(p.Points)))
	for _, pt := range p.Points {
		pt.write(c, version)
	}
	return nil
}

// CastleTemplates is the top-level asset listing every pre-built castle
// placement plus an optional boundary perimeter.
type CastleTemplates struct {
	Version     uint16
	PropertyKey PropertyKey
	Templates   []CastleTemplate
	Perimeter   *CastlePerimeter
}

const castleTemplatesAssetName = "CastleTemplates"

// ParseCastleTemplates reads a CastleTemplates asset.
func ParseCastleTemplates(c *ParseContext) (*CastleTemplates, error) {
	ct := &CastleTemplates{}
	_, err := c.ReadAsset(castleTemplatesAssetName, func(h AssetHeader) error {
		ct.Version = h.Version
		key, err := c.ParsePropertyKey()
		if err != nil {
			return err
		}
		ct.PropertyKey = key

		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		ct.Templates = make([]CastleTemplate, count)
		for i := range ct.Templates {
			if ct.Templates[i], err = parseCastleTemplate(c, h.Version); err != nil {
				return err
			}
		}

		if h.Version >= 2 {
			p, err := parseCastlePerimeter(c, h.Version)
			if err != nil {
				return err
			}
			ct.Perimeter = &p
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing CastleTemplates, %d templates", len(ct.Templates))
	return ct, nil
}

// Write writes the CastleTemplates asset.
func (ct *CastleTemplates) Write(c *WriteContext) error {
	return c.WriteAsset(castleTemplatesAssetName, ct.Version, func() error {
		if err := c.WritePropertyKey(ct.PropertyKey); err != nil {
			return err
		}
		c.Stream.WriteUint32(uint32(len(ct.Templates)))
		for _, t := range ct.Templates {
			t.write(c, ct.Version)
		}
		if ct.Version >= 2 {
			return ct.Perimeter.write(c, ct.Version)
		}
		return nil
	})
}
