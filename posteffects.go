// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// PostEffectParameter is one typed named parameter of a PostEffect. Exactly
// one of FloatValue, Float4Value, IntValue, TextureValue is meaningful,
// selected by Type.
type PostEffectParameter struct {
	Name string
	Type string // "Float", "Float4", "Int", or "Texture"

	FloatValue   float32
	Float4Value  Vec4
	IntValue     int32
	TextureValue string
}

func parsePostEffectParameter(c *ParseContext) (PostEffectParameter, error) {
	var p PostEffectParameter
	var err error
	if p.Name, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return p, err
	}
	if p.Type, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return p, err
	}
	switch p.Type {
	case "Float":
		if p.FloatValue, err = c.Stream.ReadFloat(); err != nil {
			return p, err
		}
	case "Float4":
		if p.Float4Value, err = c.Stream.ReadVector4(); err != nil {
			return p, err
		}
	case "Int":
		v, err := c.Stream.ReadUint32()
		if err != nil {
			return p, err
		}
		p.IntValue = int32(v)
	case "Texture":
		if p.TextureValue, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return p, err
		}
	default:
		return p, ErrUnknownPostEffectParameterType
	}
	return p, nil
}

func (p PostEffectParameter) write(c *WriteContext) error {
	c.Stream.WriteUint16PrefixedAsciiString(p.Name)
	c.Stream.WriteUint16PrefixedAsciiString(p.Type)
	switch p.Type {
	case "Float":
		c.Stream.WriteFloat(p.FloatValue)
	case "Float4":
		c.Stream.WriteVector4(p.Float4Value)
	case "Int":
		c.Stream.WriteUint32(uint32(p.IntValue))
	case "Texture":
		c.Stream.WriteUint16PrefixedAsciiString(p.TextureValue)
	default:
		return ErrUnknownPostEffectParameterType
	}
	return nil
}

// PostEffect is one screen-space post-processing effect. For version < 2
// it is a fixed blend-factor/lookup-image pair; for version >= 2 it carries
// an arbitrary list of typed parameters instead.
type PostEffect struct {
	Parameters []PostEffectParameter

	BlendFactor  *float32
	LookupImage  *string
}

func parsePostEffect(c *ParseContext, version uint16) (PostEffect, error) {
	var pe PostEffect
	if version >= 2 {
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return pe, err
		}
		pe.Parameters = make([]PostEffectParameter, count)
		for i := range pe.Parameters {
			if pe.Parameters[i], err = parsePostEffectParameter(c); err != nil {
				return pe, err
			}
		}
		return pe, nil
	}

	bf, err := c.Stream.ReadFloat()
	if err != nil {
		return pe, err
	}
	pe.BlendFactor = &bf
	li, err := c.Stream.ReadUint16PrefixedAsciiString()
	if err != nil {
		return pe, err
	}
	pe.LookupImage = &li
	return pe, nil
}

func (pe PostEffect) write(c *WriteContext, version uint16) error {
	if version >= 2 {
		c.Stream.WriteUint32(uint32(len(pe.Parameters)))
		for _, p := range pe.Parameters {
			if err := p.write(c); err != nil {
				return err
			}
		}
		return nil
	}
	c.Stream.WriteFloat(*pe.BlendFactor)
	c.Stream.WriteUint16PrefixedAsciiString(*pe.LookupImage)
	return nil
}

// PostEffectsChunk is the top-level asset listing every screen-space post
// effect. Its own effect count is a u32 for version >= 2 and a single byte
// for legacy files.
type PostEffectsChunk struct {
	Version uint16
	Effects []PostEffect
}

const postEffectsChunkAssetName = "PostEffectsChunk"

// ParsePostEffectsChunk reads a PostEffectsChunk asset.
func ParsePostEffectsChunk(c *ParseContext) (*PostEffectsChunk, error) {
	pc := &PostEffectsChunk{}
	_, err := c.ReadAsset(postEffectsChunkAssetName, func(h AssetHeader) error {
		pc.Version = h.Version
		var count uint32
		if h.Version >= 2 {
			v, err := c.Stream.ReadUint32()
			if err != nil {
				return err
			}
			count = v
		} else {
			v, err := c.Stream.ReadUint8()
			if err != nil {
				return err
			}
			count = uint32(v)
		}
		pc.Effects = make([]PostEffect, count)
		for i := range pc.Effects {
			pe, err := parsePostEffect(c, h.Version)
			if err != nil {
				return err
			}
			pc.Effects[i] = pe
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing PostEffectsChunk, %d effects", len(pc.Effects))
	return pc, nil
}

// Write writes the PostEffectsChunk asset.
func (pc *PostEffectsChunk) Write(c *WriteContext) error {
	return c.WriteAsset(postEffectsChunkAssetName, pc.Version, func() error {
		if pc.Version >= 2 {
			c.Stream.WriteUint32(uint32(len(pc.Effects)))
		} else {
			c.Stream.WriteUint8(uint8(len(pc.Effects)))
		}
		for _, pe := range pc.Effects {
			if err := pe.write(c, pc.Version); err != nil {
				return err
			}
		}
		return nil
	})
}
