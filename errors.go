// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

import "errors"

// Errors returned by the binary stream primitives.
var (
	// ErrShortRead is returned when fewer bytes remain than a primitive needs.
	ErrShortRead = errors.New("sagemap: short read")

	// ErrInvalidUTF16 is returned when a Unicode string is not valid UTF-16.
	ErrInvalidUTF16 = errors.New("sagemap: invalid UTF-16 string")

	// ErrUint24Overflow is returned when a value does not fit in 24 bits.
	ErrUint24Overflow = errors.New("sagemap: value does not fit in 24 bits")

	// ErrInvalidBool is returned by the checked bool readers when the byte
	// is neither 0 nor 1.
	ErrInvalidBool = errors.New("sagemap: invalid boolean byte")

	// ErrInvalidBoolPadding is returned when a bool-u32's three padding
	// bytes are not all zero.
	ErrInvalidBoolPadding = errors.New("sagemap: non-zero padding in boolean u32")
)

// Errors returned by the container / name table layer.
var (
	// ErrAssetIndexMismatch is returned when a name-table entry's check
	// value does not match its expected index.
	ErrAssetIndexMismatch = errors.New("sagemap: asset index mismatch in name table")

	// ErrUnknownAssetIndex is returned when an index has no entry in the
	// current name table.
	ErrUnknownAssetIndex = errors.New("sagemap: asset index not present in name table")

	// ErrDataSizeMismatch is returned when an asset's body does not occupy
	// exactly its declared datasize.
	ErrDataSizeMismatch = errors.New("sagemap: asset datasize mismatch")

	// ErrUnknownAsset is returned by the strict orchestrator when it
	// encounters an asset name with no registered codec.
	ErrUnknownAsset = errors.New("sagemap: unknown asset name")
)

// Errors returned by the property codec.
var (
	// ErrDuplicateProperty is returned when a property list contains the
	// same name twice.
	ErrDuplicateProperty = errors.New("sagemap: duplicate property name")

	// ErrUnknownPropertyType is returned for a property type tag outside
	// the closed AssetPropertyType enum.
	ErrUnknownPropertyType = errors.New("sagemap: unknown property type")

	// ErrMissingPropertyKey is returned when a BuildList without an
	// AssetList needs a faction-name property key that was never set.
	ErrMissingPropertyKey = errors.New("sagemap: missing faction name property key")
)

// Errors returned by asset codecs for invariant violations.
var (
	// ErrHeightMapAreaMismatch is returned when HeightMapData.area !=
	// width*height.
	ErrHeightMapAreaMismatch = errors.New("sagemap: height map area does not match width*height")

	// ErrBlendTileWithoutHeightMap is returned when BlendTileData is
	// encountered before HeightMapData.
	ErrBlendTileWithoutHeightMap = errors.New("sagemap: BlendTileData encountered before HeightMapData")

	// ErrBlendTileTileCountMismatch is returned when tiles_count does not
	// match width*height.
	ErrBlendTileTileCountMismatch = errors.New("sagemap: BlendTileData tile count does not match height map dimensions")

	// ErrBlendTextureCellSize is returned when cell_size*cell_size !=
	// cell_count for a BlendTileTexture.
	ErrBlendTextureCellSize = errors.New("sagemap: blend tile texture cell_size^2 != cell_count")

	// ErrBlendTextureMagic is returned when a BlendTileTexture's magic
	// value is not zero.
	ErrBlendTextureMagic = errors.New("sagemap: blend tile texture magic value is not zero")

	// ErrBlendDescriptionMagic is returned when a BlendDescription's
	// second magic value is not 0x7ADA0000.
	ErrBlendDescriptionMagic = errors.New("sagemap: blend description magic_value2 != 0x7ADA0000")

	// ErrBlendTileMagic is returned when BlendTileData's top-level
	// magic_value2 is not zero.
	ErrBlendTileMagic = errors.New("sagemap: blend tile data magic_value2 != 0")

	// ErrScriptUnknownString is returned when Script.unknown is not one of
	// the closed set of recognised values.
	ErrScriptUnknownString = errors.New("sagemap: script unknown field has unexpected value")

	// ErrScriptUnknown3 is returned when Script.unknown3 is not zero.
	ErrScriptUnknown3 = errors.New("sagemap: script unknown3 != 0")

	// ErrOrConditionChildName is returned when an OrCondition child is not
	// named "Condition".
	ErrOrConditionChildName = errors.New("sagemap: OrCondition child is not named Condition")

	// ErrScriptListVersion is returned when ScriptList.version != 1.
	ErrScriptListVersion = errors.New("sagemap: unsupported ScriptList version")

	// ErrSidesListUnexpectedAsset is returned by the legacy (version < 5)
	// SidesList tail loop on encountering any trailing asset, including a
	// "Team" asset it could otherwise have handled.
	ErrSidesListUnexpectedAsset = errors.New("sagemap: unexpected asset encountered while parsing SidesList")

	// ErrTriggerAreaUnknown2 is returned when TriggerArea.unknown2 != 0.
	ErrTriggerAreaUnknown2 = errors.New("sagemap: trigger area unknown2 != 0")

	// ErrRiverAreaUnusedColorAlpha is returned when RiverArea's unused
	// color alpha byte is not zero.
	ErrRiverAreaUnusedColorAlpha = errors.New("sagemap: river area unused color alpha != 0")

	// ErrStandingWaveAreaUnknown is returned when StandingWaveArea.unknown
	// != 0.
	ErrStandingWaveAreaUnknown = errors.New("sagemap: standing wave area unknown != 0")

	// ErrCastlePerimeterMissingName is returned when a CastlePerimeter has
	// has_perimeter set but no name was supplied on write.
	ErrCastlePerimeterMissingName = errors.New("sagemap: castle perimeter missing name")

	// ErrCameraAnimationType is returned when a CameraAnimation's reversed
	// FourCC tag is not "free" or "look".
	ErrCameraAnimationType = errors.New("sagemap: camera animation type is not free or look")

	// ErrCameraInterpolationType is returned when a camera keyframe's
	// reversed FourCC interpolation tag is not "catm" or "line".
	ErrCameraInterpolationType = errors.New("sagemap: camera interpolation type is not catm or line")

	// ErrUnknownPostEffectParameterType is returned for a post effect
	// parameter type string outside {Float, Float4, Int, Texture}.
	ErrUnknownPostEffectParameterType = errors.New("sagemap: unknown post effect parameter type")

	// ErrUnexpectedAssetName is returned when a fixed-child-type list (for
	// example ObjectsList, MPPositionList, LibraryMapLists) encounters a
	// trailing asset name other than the one it expects.
	ErrUnexpectedAssetName = errors.New("sagemap: unexpected asset name")
)

// Errors returned by the compression envelope.
var (
	// ErrCompressionFailed is returned on write whenever the configured
	// Compressor returns an error; there is no uncompressed fallback.
	ErrCompressionFailed = errors.New("sagemap: compression failed")
)
