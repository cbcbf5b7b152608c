// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// readInterpolationType reads a FourCC tag stored reversed on disk and
// validates it is one of the two recognised interpolation kinds.
func readInterpolationType(s *Stream) (string, error) {
	raw, err := s.ReadFourCC()
	if err != nil {
		return "", err
	}
	v := reverseString(raw)
	if v != "catm" && v != "line" {
		return "", ErrCameraInterpolationType
	}
	return v, nil
}

func writeInterpolationType(s *Stream, v string) { s.WriteFourCC(reverseString(v)) }

// FreeCameraFrame is one keyframe of a "free" camera animation.
type FreeCameraFrame struct {
	FrameIndex        uint32
	InterpolationType string
	Position          Vec3
	Rotation          Vec4
	FOV               float32
}

func parseFreeCameraFrame(c *ParseContext) (FreeCameraFrame, error) {
	var f FreeCameraFrame
	var err error
	if f.FrameIndex, err = c.Stream.ReadUint32(); err != nil {
		return f, err
	}
	if f.InterpolationType, err = readInterpolationType(c.Stream); err != nil {
		return f, err
	}
	if f.Position, err = c.Stream.ReadVector3(); err != nil {
		return f, err
	}
	if f.Rotation, err = c.Stream.ReadVector4(); err != nil {
		return f, err
	}
	if f.FOV, err = c.Stream.ReadFloat(); err != nil {
		return f, err
	}
	return f, nil
}

func (f FreeCameraFrame) write(c *WriteContext) {
	c.Stream.WriteUint32(f.FrameIndex)
	writeInterpolationType(c.Stream, f.InterpolationType)
	c.Stream.WriteVector3(f.Position)
	c.Stream.WriteVector4(f.Rotation)
	c.Stream.WriteFloat(f.FOV)
}

// LookAtFrame is one look-at-target keyframe of a "look" camera
// animation.
type LookAtFrame struct {
	FrameIndex        uint32
	InterpolationType string
	LookAtPoint       Vec3
}

func parseLookAtFrame(c *ParseContext) (LookAtFrame, error) {
	var f LookAtFrame
	var err error
	if f.FrameIndex, err = c.Stream.ReadUint32(); err != nil {
		return f, err
	}
	if f.InterpolationType, err = readInterpolationType(c.Stream); err != nil {
		return f, err
	}
	if f.LookAtPoint, err = c.Stream.ReadVector3(); err != nil {
		return f, err
	}
	return f, nil
}

func (f LookAtFrame) write(c *WriteContext) {
	c.Stream.WriteUint32(f.FrameIndex)
	writeInterpolationType(c.Stream, f.InterpolationType)
	c.Stream.WriteVector3(f.LookAtPoint)
}

// LookAtCameraFrame is one camera-position keyframe of a "look" camera
// animation, paired with a separate list of LookAtFrame targets.
type LookAtCameraFrame struct {
	FrameIndex        uint32
	InterpolationType string
	Position          Vec3
	Roll              float32
	FOV               float32
}

func parseLookAtCameraFrame(c *ParseContext) (LookAtCameraFrame, error) {
	var f LookAtCameraFrame
	var err error
	if f.FrameIndex, err = c.Stream.ReadUint32(); err != nil {
		return f, err
	}
	if f.InterpolationType, err = readInterpolationType(c.Stream); err != nil {
		return f, err
	}
	if f.Position, err = c.Stream.ReadVector3(); err != nil {
		return f, err
	}
	if f.Roll, err = c.Stream.ReadFloat(); err != nil {
		return f, err
	}
	if f.FOV, err = c.Stream.ReadFloat(); err != nil {
		return f, err
	}
	return f, nil
}

func (f LookAtCameraFrame) write(c *WriteContext) {
	c.Stream.WriteUint32(f.FrameIndex)
	writeInterpolationType(c.Stream, f.InterpolationType)
	c.Stream.WriteVector3(f.Position)
	c.Stream.WriteFloat(f.Roll)
	c.Stream.WriteFloat(f.FOV)
}

// CameraAnimation is one polymorphic animation: AnimationType ("free" or
// "look", stored reversed) selects which of FreeFrames or
// (LookAtCameraFrames, LookAtFrames) is populated.
type CameraAnimation struct {
	AnimationType string
	Name          string
	NumFrames     uint32
	StartOffset   uint32

	FreeFrames []FreeCameraFrame

	LookAtCameraFrames []LookAtCameraFrame
	LookAtFrames       []LookAtFrame
}

// ParseCameraAnimation reads one CameraAnimation record.
func ParseCameraAnimation(c *ParseContext) (*CameraAnimation, error) {
	a := &CameraAnimation{}
	raw, err := c.Stream.ReadFourCC()
	if err != nil {
		return nil, err
	}
	a.AnimationType = reverseString(raw)
	if a.AnimationType != "free" && a.AnimationType != "look" {
		return nil, ErrCameraAnimationType
	}

	if a.Name, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return nil, err
	}
	if a.NumFrames, err = c.Stream.ReadUint32(); err != nil {
		return nil, err
	}
	if a.StartOffset, err = c.Stream.ReadUint32(); err != nil {
		return nil, err
	}

	switch a.AnimationType {
	case "free":
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return nil, err
		}
		a.FreeFrames = make([]FreeCameraFrame, count)
		for i := range a.FreeFrames {
			if a.FreeFrames[i], err = parseFreeCameraFrame(c); err != nil {
				return nil, err
			}
		}
	case "look":
		camCount, err := c.Stream.ReadUint32()
		if err != nil {
			return nil, err
		}
		a.LookAtCameraFrames = make([]LookAtCameraFrame, camCount)
		for i := range a.LookAtCameraFrames {
			if a.LookAtCameraFrames[i], err = parseLookAtCameraFrame(c); err != nil {
				return nil, err
			}
		}
		lookCount, err := c.Stream.ReadUint32()
		if err != nil {
			return nil, err
		}
		a.LookAtFrames = make([]LookAtFrame, lookCount)
		for i := range a.LookAtFrames {
			if a.LookAtFrames[i], err = parseLookAtFrame(c); err != nil {
				return nil, err
			}
		}
	}

	c.Logger.Debugf("camera animation: %s, type: %s, frames: %d, startOffset: %d", a.Name, a.AnimationType, a.NumFrames, a.StartOffset)
	return a, nil
}

// Write writes one CameraAnimation record.
func (a *CameraAnimation) Write(c *WriteContext) {
	c.Stream.WriteFourCC(reverseString(a.AnimationType))
	c.Stream.WriteUint16PrefixedAsciiString(a.Name)
	c.Stream.WriteUint32(a.NumFrames)
	c.Stream.WriteUint32(a.StartOffset)

	switch a.AnimationType {
	case "free":
		c.Stream.WriteUint32(uint32(len(a.FreeFrames)))
		for _, f := range a.FreeFrames {
			f.write(c)
		}
	case "look":
		c.Stream.WriteUint32(uint32(len(a.LookAtCameraFrames)))
		for _, f := range a.LookAtCameraFrames {
			f.write(c)
		}
		c.Stream.WriteUint32(uint32(len(a.LookAtFrames)))
		for _, f := range a.LookAtFrames {
			f.write(c)
		}
	}
}

// CameraAnimationList is the top-level asset listing every
// CameraAnimation.
type CameraAnimationList struct {
	Version    uint16
	Animations []CameraAnimation
}

const cameraAnimationListAssetName = "CameraAnimationList"

// ParseCameraAnimationList reads a CameraAnimationList asset.
func ParseCameraAnimationList(c *ParseContext) (*CameraAnimationList, error) {
	l := &CameraAnimationList{}
	_, err := c.ReadAsset(cameraAnimationListAssetName, func(h AssetHeader) error {
		l.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		l.Animations = make([]CameraAnimation, count)
		for i := range l.Animations {
			a, err := ParseCameraAnimation(c)
			if err != nil {
				return err
			}
			l.Animations[i] = *a
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing CameraAnimationList")
	return l, nil
}

// Write writes the CameraAnimationList asset.
func (l *CameraAnimationList) Write(c *WriteContext) error {
	return c.WriteAsset(cameraAnimationListAssetName, l.Version, func() error {
		c.Stream.WriteUint32(uint32(len(l.Animations)))
		for i := range l.Animations {
			l.Animations[i].Write(c)
		}
		return nil
	})
}

// NamedCamera is one fixed, user-named camera placement.
type NamedCamera struct {
	LookAtPoint Vec3
	Name        string
	Pitch       float32
	Roll        float32
	Yaw         float32
	Zoom        float32
	FOV         float32
	Unknown     float32
}

// ParseNamedCamera reads one NamedCamera record.
func ParseNamedCamera(c *ParseContext) (*NamedCamera, error) {
	n := &NamedCamera{}
	var err error
	if n.LookAtPoint, err = c.Stream.ReadVector3(); err != nil {
		return nil, err
	}
	if n.Name, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return nil, err
	}
	if n.Pitch, err = c.Stream.ReadFloat(); err != nil {
		return nil, err
	}
	if n.Roll, err = c.Stream.ReadFloat(); err != nil {
		return nil, err
	}
	if n.Yaw, err = c.Stream.ReadFloat(); err != nil {
		return nil, err
	}
	if n.Zoom, err = c.Stream.ReadFloat(); err != nil {
		return nil, err
	}
	if n.FOV, err = c.Stream.ReadFloat(); err != nil {
		return nil, err
	}
	if n.Unknown, err = c.Stream.ReadFloat(); err != nil {
		return nil, err
	}
	c.Logger.Debugf("named camera: %s, lookAt: %v, pitch: %f, roll: %f, yaw: %f, zoom: %f, fov: %f", n.Name, n.LookAtPoint, n.Pitch, n.Roll, n.Yaw, n.Zoom, n.FOV)
	return n, nil
}

// Write writes one NamedCamera record.
func (n *NamedCamera) Write(c *WriteContext) {
	c.Stream.WriteVector3(n.LookAtPoint)
	c.Stream.WriteUint16PrefixedAsciiString(n.Name)
	c.Stream.WriteFloat(n.Pitch)
	c.Stream.WriteFloat(n.Roll)
	c.Stream.WriteFloat(n.Yaw)
	c.Stream.WriteFloat(n.Zoom)
	c.Stream.WriteFloat(n.FOV)
	c.Stream.WriteFloat(n.Unknown)
}

// NamedCameras is the top-level asset listing every NamedCamera.
type NamedCameras struct {
	Version uint16
	Cameras []NamedCamera
}

const namedCamerasAssetName = "NamedCameras"

// ParseNamedCameras reads a NamedCameras asset.
func ParseNamedCameras(c *ParseContext) (*NamedCameras, error) {
	nc := &NamedCameras{}
	_, err := c.ReadAsset(namedCamerasAssetName, func(h AssetHeader) error {
		nc.Version = h.Version
		count, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		nc.Cameras = make([]NamedCamera, count)
		for i := range nc.Cameras {
			n, err := ParseNamedCamera(c)
			if err != nil {
				return err
			}
			nc.Cameras[i] = *n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing NamedCameras")
	return nc, nil
}

// Write writes the NamedCameras asset.
func (nc *NamedCameras) Write(c *WriteContext) error {
	return c.WriteAsset(namedCamerasAssetName, nc.Version, func() error {
		c.Stream.WriteUint32(uint32(len(nc.Cameras)))
		for i := range nc.Cameras {
			nc.Cameras[i].Write(c)
		}
		return nil
	})
}
