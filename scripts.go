// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package sagemap

// ScriptArgumentType is the (sparse, non-contiguous) closed set of script
// argument kinds. Unknown/unrecognised integer values still round-trip
// literally; the type itself is never validated against this set.
type ScriptArgumentType uint32

// Script argument type values.
const (
	ArgInteger               ScriptArgumentType = 0
	ArgRealNumber            ScriptArgumentType = 1
	ArgScriptName            ScriptArgumentType = 2
	ArgTeamName              ScriptArgumentType = 3
	ArgCounterName           ScriptArgumentType = 4
	ArgFlagName              ScriptArgumentType = 5
	ArgComparison            ScriptArgumentType = 6
	ArgWaypointName          ScriptArgumentType = 7
	ArgBoolean               ScriptArgumentType = 8
	ArgTriggerAreaName       ScriptArgumentType = 9
	ArgText                  ScriptArgumentType = 10
	ArgPlayerName            ScriptArgumentType = 11
	ArgSoundName             ScriptArgumentType = 12
	ArgSubroutineName        ScriptArgumentType = 13
	ArgUnitName              ScriptArgumentType = 14
	ArgObjectName            ScriptArgumentType = 15
	ArgPositionCoordinate    ScriptArgumentType = 16
	ArgAngle                 ScriptArgumentType = 17
	ArgTeamState             ScriptArgumentType = 18
	ArgRelation              ScriptArgumentType = 19
	ArgAIMood                ScriptArgumentType = 20
	ArgSpeechName            ScriptArgumentType = 21
	ArgMusicName             ScriptArgumentType = 22
	ArgMovieName             ScriptArgumentType = 23
	ArgWaypointPathName      ScriptArgumentType = 24
	ArgLocalizedStringName   ScriptArgumentType = 25
	ArgBridgeName            ScriptArgumentType = 26
	ArgUnitOrStructureKind   ScriptArgumentType = 27
	ArgAttackPrioritySetName ScriptArgumentType = 28
	ArgRadarEventType        ScriptArgumentType = 29
	ArgSpecialPowerName      ScriptArgumentType = 30
	ArgScienceName           ScriptArgumentType = 31
	ArgUpgradeName           ScriptArgumentType = 32
	ArgUnitAbilityName       ScriptArgumentType = 33
	ArgBoundaryName          ScriptArgumentType = 34
	ArgBuildability          ScriptArgumentType = 35
	ArgSurfaceType           ScriptArgumentType = 36
	ArgCameraShakeIntensity  ScriptArgumentType = 37
	ArgCommandButtonName     ScriptArgumentType = 38
	ArgFontName              ScriptArgumentType = 39
	ArgObjectStatus          ScriptArgumentType = 40
	ArgTeamAbilityName       ScriptArgumentType = 41
	ArgSkirmishApproachPath  ScriptArgumentType = 42
	ArgColor                 ScriptArgumentType = 43
	ArgEmoticonName          ScriptArgumentType = 44
	ArgObjectPanelFlag       ScriptArgumentType = 45
	ArgFactionName           ScriptArgumentType = 46
	ArgObjectTypeListName    ScriptArgumentType = 47
	ArgMapRevealName         ScriptArgumentType = 48
	ArgScienceAvailability   ScriptArgumentType = 49
	ArgEvacuateContainerSide ScriptArgumentType = 50
	ArgPercentage            ScriptArgumentType = 51
	ArgPercentage2           ScriptArgumentType = 52
	ArgUnitReference         ScriptArgumentType = 54
	ArgTeamReference         ScriptArgumentType = 55
	ArgNearOrFar             ScriptArgumentType = 56
	ArgMathOperator          ScriptArgumentType = 57
	ArgModelCondition        ScriptArgumentType = 58
	ArgAudioName             ScriptArgumentType = 59
	ArgReverbRoomType        ScriptArgumentType = 60
	ArgObjectType            ScriptArgumentType = 61
	ArgHero                  ScriptArgumentType = 62
	ArgEmotion               ScriptArgumentType = 63
	ArgUnknown1              ScriptArgumentType = 64
	ArgObjectiveComplete     ScriptArgumentType = 77
)

// ScriptArgument is one action/condition argument. Exactly one of
// Position or (IntValue, FloatValue, StringValue) is populated, selected
// by Type.
type ScriptArgument struct {
	Type ScriptArgumentType

	IntValue    int32
	FloatValue  float32
	StringValue string

	Position Vec3
}

func parseScriptArgument(c *ParseContext) (ScriptArgument, error) {
	t, err := c.Stream.ReadUint32()
	if err != nil {
		return ScriptArgument{}, err
	}
	a := ScriptArgument{Type: ScriptArgumentType(t)}
	if a.Type == ArgPositionCoordinate {
		if a.Position, err = c.Stream.ReadVector3(); err != nil {
			return ScriptArgument{}, err
		}
		return a, nil
	}
	if a.IntValue, err = c.Stream.ReadInt32(); err != nil {
		return ScriptArgument{}, err
	}
	if a.FloatValue, err = c.Stream.ReadFloat(); err != nil {
		return ScriptArgument{}, err
	}
	if a.StringValue, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
		return ScriptArgument{}, err
	}
	return a, nil
}

func (a ScriptArgument) write(c *WriteContext) {
	c.Stream.WriteUint32(uint32(a.Type))
	if a.Type == ArgPositionCoordinate {
		c.Stream.WriteVector3(a.Position)
		return
	}
	c.Stream.WriteInt32(a.IntValue)
	c.Stream.WriteFloat(a.FloatValue)
	c.Stream.WriteUint16PrefixedAsciiString(a.StringValue)
}

// ScriptDerived is the schema shared by ScriptAction, ScriptActionFalse,
// and (with IsInverted present) Condition. hasInternalNameVersion,
// hasIsEnabledVersion, and hasIsInverted are parse/write parameters, not
// on-disk fields: the caller (OrCondition or Script) selects them by
// context.
type ScriptDerived struct {
	Version     uint16
	ContentType uint32
	InternalName *PropertyKey
	Arguments   []ScriptArgument
	IsEnabled   *bool
	IsInverted  *bool
}

func parseScriptDerived(c *ParseContext, assetName string, hasInternalNameVersion, hasIsEnabledVersion uint16, hasIsInverted bool) (ScriptDerived, error) {
	sd := ScriptDerived{}
	_, err := c.ReadAsset(assetName, func(h AssetHeader) error {
		sd.Version = h.Version
		var err error
		if sd.ContentType, err = c.Stream.ReadUint32(); err != nil {
			return err
		}
		if h.Version >= hasInternalNameVersion {
			key, err := c.ParsePropertyKey()
			if err != nil {
				return err
			}
			sd.InternalName = &key
		}
		numArgs, err := c.Stream.ReadUint32()
		if err != nil {
			return err
		}
		sd.Arguments = make([]ScriptArgument, numArgs)
		for i := range sd.Arguments {
			if sd.Arguments[i], err = parseScriptArgument(c); err != nil {
				return err
			}
		}
		if h.Version >= hasIsEnabledVersion {
			enabled, err := c.Stream.ReadBoolUint32()
			if err != nil {
				return err
			}
			sd.IsEnabled = &enabled
			if hasIsInverted {
				inverted, err := c.Stream.ReadBoolUint32()
				if err != nil {
					return err
				}
				sd.IsInverted = &inverted
			}
		}
		return nil
	})
	return sd, err
}

func (sd ScriptDerived) write(c *WriteContext, assetName string, hasInternalNameVersion, hasIsEnabledVersion uint16, hasIsInverted bool) error {
	return c.WriteAsset(assetName, sd.Version, func() error {
		c.Stream.WriteUint32(sd.ContentType)
		if sd.Version >= hasInternalNameVersion {
			if err := c.WritePropertyKey(*sd.InternalName); err != nil {
				return err
			}
		}
		c.Stream.WriteUint32(uint32(len(sd.Arguments)))
		for _, a := range sd.Arguments {
			a.write(c)
		}
		if sd.Version >= hasIsEnabledVersion {
			c.Stream.WriteBoolUint32(*sd.IsEnabled)
			if hasIsInverted {
				c.Stream.WriteBoolUint32(*sd.IsInverted)
			}
		}
		return nil
	})
}

// OrCondition holds an ordered list of Condition records, each sharing
// ScriptDerived's schema with is_inverted present.
type OrCondition struct {
	Version    uint16
	Conditions []ScriptDerived
}

const orConditionAssetName = "OrCondition"
const conditionAssetName = "Condition"

// ParseOrCondition reads an OrCondition asset.
func ParseOrCondition(c *ParseContext) (*OrCondition, error) {
	oc := &OrCondition{}
	_, err := c.ReadAsset(orConditionAssetName, func(h AssetHeader) error {
		oc.Version = h.Version
		for c.Stream.Tell() < h.End {
			name, err := c.ParseAssetName()
			if err != nil {
				return err
			}
			if name != conditionAssetName {
				return ErrOrConditionChildName
			}
			cond, err := parseScriptDerived(c, conditionAssetName, 4, 5, true)
			if err != nil {
				return err
			}
			oc.Conditions = append(oc.Conditions, cond)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return oc, nil
}

// Write writes the OrCondition asset.
func (oc *OrCondition) Write(c *WriteContext) error {
	return c.WriteAsset(orConditionAssetName, oc.Version, func() error {
		for _, cond := range oc.Conditions {
			c.WriteAssetName(conditionAssetName)
			if err := cond.write(c, conditionAssetName, 4, 5, true); err != nil {
				return err
			}
		}
		return nil
	})
}

// Script is a trigger script: an ordered header, optional version-gated
// suffix fields, and three heterogeneous child lists (or-conditions,
// true-actions, false-actions) in file order.
type Script struct {
	Version uint16

	Name              string
	Comment           string
	ConditionsComment string
	ActionsComment    string

	IsActive               bool
	DeactivateUponSuccess  bool
	ActiveInEasy           bool
	ActiveInMedium         bool
	ActiveInHard           bool
	IsSubroutine           bool

	EvaluationInterval         *uint32
	UsesEvaluationIntervalType bool
	EvaluationIntervalType     uint32

	ActionsFireSequentially *bool
	LoopActions             *bool
	LoopCount               *int32
	SequentialTargetType    *bool
	SequentialTargetName    *string

	// Unknown must be one of "ALL", "Planning", "X".
	Unknown *string
	// Unknown2 is an opaque value present from v6; Unknown3 must be 0.
	Unknown2 *int32
	Unknown3 *uint16

	OrConditions   []OrCondition
	ActionsIfTrue  []ScriptDerived
	ActionsIfFalse []ScriptDerived
}

const scriptAssetName = "Script"
const scriptActionAssetName = "ScriptAction"
const scriptActionFalseAssetName = "ScriptActionFalse"

// ParseScript reads a Script asset.
func ParseScript(c *ParseContext) (*Script, error) {
	s := &Script{}
	_, err := c.ReadAsset(scriptAssetName, func(h AssetHeader) error {
		s.Version = h.Version
		var err error
		if s.Name, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		c.Logger.Infof("parsing script: %s", s.Name)
		if s.Comment, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		if s.ConditionsComment, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		if s.ActionsComment, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		if s.IsActive, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if s.DeactivateUponSuccess, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if s.ActiveInEasy, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if s.ActiveInMedium, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if s.ActiveInHard, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if s.IsSubroutine, err = c.Stream.ReadBool(); err != nil {
			return err
		}

		s.EvaluationIntervalType = 6
		if h.Version >= 2 {
			v, err := c.Stream.ReadUint32()
			if err != nil {
				return err
			}
			s.EvaluationInterval = &v
			if h.Version == 5 {
				if s.UsesEvaluationIntervalType, err = c.Stream.ReadBool(); err != nil {
					return err
				}
				if s.EvaluationIntervalType, err = c.Stream.ReadUint32(); err != nil {
					return err
				}
			}
		}

		if h.Version >= 3 {
			fireSeq, err := c.Stream.ReadBool()
			if err != nil {
				return err
			}
			s.ActionsFireSequentially = &fireSeq
			loop, err := c.Stream.ReadBool()
			if err != nil {
				return err
			}
			s.LoopActions = &loop
			count, err := c.Stream.ReadInt32()
			if err != nil {
				return err
			}
			s.LoopCount = &count
			targetType, err := c.Stream.ReadBool()
			if err != nil {
				return err
			}
			s.SequentialTargetType = &targetType
			targetName, err := c.Stream.ReadUint16PrefixedAsciiString()
			if err != nil {
				return err
			}
			s.SequentialTargetName = &targetName
		}

		if h.Version >= 4 {
			unknown, err := c.Stream.ReadUint16PrefixedAsciiString()
			if err != nil {
				return err
			}
			if unknown != "ALL" && unknown != "Planning" && unknown != "X" {
				return ErrScriptUnknownString
			}
			s.Unknown = &unknown
		}

		if h.Version >= 6 {
			unknown2, err := c.Stream.ReadInt32()
			if err != nil {
				return err
			}
			s.Unknown2 = &unknown2
			unknown3, err := c.Stream.ReadUint16()
			if err != nil {
				return err
			}
			if unknown3 != 0 {
				return ErrScriptUnknown3
			}
			s.Unknown3 = &unknown3
		}

		for c.Stream.Tell() < h.End {
			name, err := c.ParseAssetName()
			if err != nil {
				return err
			}
			switch name {
			case orConditionAssetName:
				oc, err := ParseOrCondition(c)
				if err != nil {
					return err
				}
				s.OrConditions = append(s.OrConditions, *oc)
			case scriptActionAssetName:
				sd, err := parseScriptDerived(c, scriptActionAssetName, 2, 3, false)
				if err != nil {
					return err
				}
				s.ActionsIfTrue = append(s.ActionsIfTrue, sd)
			case scriptActionFalseAssetName:
				sd, err := parseScriptDerived(c, scriptActionFalseAssetName, 2, 3, false)
				if err != nil {
					return err
				}
				s.ActionsIfFalse = append(s.ActionsIfFalse, sd)
			default:
				return ErrUnknownAsset
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing Script")
	return s, nil
}

// Write writes the Script asset.
func (s *Script) Write(c *WriteContext) error {
	return c.WriteAsset(scriptAssetName, s.Version, func() error {
		c.Stream.WriteUint16PrefixedAsciiString(s.Name)
		c.Stream.WriteUint16PrefixedAsciiString(s.Comment)
		c.Stream.WriteUint16PrefixedAsciiString(s.ConditionsComment)
		c.Stream.WriteUint16PrefixedAsciiString(s.ActionsComment)

		c.Stream.WriteBool(s.IsActive)
		c.Stream.WriteBool(s.DeactivateUponSuccess)
		c.Stream.WriteBool(s.ActiveInEasy)
		c.Stream.WriteBool(s.ActiveInMedium)
		c.Stream.WriteBool(s.ActiveInHard)
		c.Stream.WriteBool(s.IsSubroutine)

		if s.Version >= 2 {
			c.Stream.WriteUint32(*s.EvaluationInterval)
			if s.Version == 5 {
				c.Stream.WriteBool(s.UsesEvaluationIntervalType)
				c.Stream.WriteUint32(s.EvaluationIntervalType)
			}
		}

		if s.Version >= 3 {
			c.Stream.WriteBool(*s.ActionsFireSequentially)
			c.Stream.WriteBool(*s.LoopActions)
			c.Stream.WriteInt32(*s.LoopCount)
			c.Stream.WriteBool(*s.SequentialTargetType)
			c.Stream.WriteUint16PrefixedAsciiString(*s.SequentialTargetName)
		}

		if s.Version >= 4 {
			c.Stream.WriteUint16PrefixedAsciiString(*s.Unknown)
		}

		if s.Version >= 6 {
			c.Stream.WriteInt32(*s.Unknown2)
			c.Stream.WriteUint16(*s.Unknown3)
		}

		for _, oc := range s.OrConditions {
			c.WriteAssetName(orConditionAssetName)
			if err := oc.Write(c); err != nil {
				return err
			}
		}
		for _, sd := range s.ActionsIfTrue {
			c.WriteAssetName(scriptActionAssetName)
			if err := sd.write(c, scriptActionAssetName, 2, 3, false); err != nil {
				return err
			}
		}
		for _, sd := range s.ActionsIfFalse {
			c.WriteAssetName(scriptActionFalseAssetName)
			if err := sd.write(c, scriptActionFalseAssetName, 2, 3, false); err != nil {
				return err
			}
		}
		return nil
	})
}

// ScriptGroup is a named, ordered, heterogeneous container of nested
// ScriptGroup and Script children.
type ScriptGroup struct {
	Version      uint16
	Name         string
	IsActive     bool
	IsSubroutine bool
	Items        []ScriptTreeNode
}

const scriptGroupAssetName = "ScriptGroup"

// ScriptTreeNode is implemented by *ScriptGroup and *Script: the two
// child kinds a ScriptGroup or ScriptList may hold, in file order.
type ScriptTreeNode interface {
	isScriptTreeNode()
}

func (*ScriptGroup) isScriptTreeNode() {}
func (*Script) isScriptTreeNode()      {}

// parseScriptTreeNode dispatches on the just-read asset name to either
// ScriptGroup or Script.
func parseScriptTreeNode(c *ParseContext, name string) (ScriptTreeNode, error) {
	switch name {
	case scriptGroupAssetName:
		return ParseScriptGroup(c)
	case scriptAssetName:
		return ParseScript(c)
	default:
		return nil, ErrUnknownAsset
	}
}

func writeScriptTreeNode(c *WriteContext, item ScriptTreeNode) error {
	switch v := item.(type) {
	case *ScriptGroup:
		c.WriteAssetName(scriptGroupAssetName)
		return v.Write(c)
	case *Script:
		c.WriteAssetName(scriptAssetName)
		return v.Write(c)
	default:
		return ErrUnknownAsset
	}
}

// ParseScriptGroup reads a ScriptGroup asset.
func ParseScriptGroup(c *ParseContext) (*ScriptGroup, error) {
	g := &ScriptGroup{}
	_, err := c.ReadAsset(scriptGroupAssetName, func(h AssetHeader) error {
		g.Version = h.Version
		var err error
		if g.Name, err = c.Stream.ReadUint16PrefixedAsciiString(); err != nil {
			return err
		}
		if g.IsActive, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		if g.IsSubroutine, err = c.Stream.ReadBool(); err != nil {
			return err
		}
		for c.Stream.Tell() < h.End {
			name, err := c.ParseAssetName()
			if err != nil {
				return err
			}
			node, err := parseScriptTreeNode(c, name)
			if err != nil {
				return err
			}
			g.Items = append(g.Items, node)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Write writes the ScriptGroup asset.
func (g *ScriptGroup) Write(c *WriteContext) error {
	return c.WriteAsset(scriptGroupAssetName, g.Version, func() error {
		c.Stream.WriteUint16PrefixedAsciiString(g.Name)
		c.Stream.WriteBool(g.IsActive)
		c.Stream.WriteBool(g.IsSubroutine)
		for _, item := range g.Items {
			if err := writeScriptTreeNode(c, item); err != nil {
				return err
			}
		}
		return nil
	})
}

// ScriptList is one faction's top-level script tree; its version must
// always be 1.
type ScriptList struct {
	Version uint16
	Items   []ScriptTreeNode
}

const scriptListAssetName = "ScriptList"

// ParseScriptList reads a ScriptList asset.
func ParseScriptList(c *ParseContext) (*ScriptList, error) {
	sl := &ScriptList{}
	_, err := c.ReadAsset(scriptListAssetName, func(h AssetHeader) error {
		if h.Version != 1 {
			return ErrScriptListVersion
		}
		sl.Version = h.Version
		for c.Stream.Tell() < h.End {
			name, err := c.ParseAssetName()
			if err != nil {
				return err
			}
			node, err := parseScriptTreeNode(c, name)
			if err != nil {
				return err
			}
			sl.Items = append(sl.Items, node)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sl, nil
}

// Write writes the ScriptList asset.
func (sl *ScriptList) Write(c *WriteContext) error {
	return c.WriteAsset(scriptListAssetName, sl.Version, func() error {
		for _, item := range sl.Items {
			if err := writeScriptTreeNode(c, item); err != nil {
				return err
			}
		}
		return nil
	})
}

// PlayerScriptsList is the root of the scripting subtree: one ScriptList
// per faction.
type PlayerScriptsList struct {
	Version     uint16
	ScriptLists []ScriptList
}

const playerScriptsListAssetName = "PlayerScriptsList"

// ParsePlayerScriptsList reads a PlayerScriptsList asset.
func ParsePlayerScriptsList(c *ParseContext) (*PlayerScriptsList, error) {
	p := &PlayerScriptsList{}
	_, err := c.ReadAsset(playerScriptsListAssetName, func(h AssetHeader) error {
		p.Version = h.Version
		for c.Stream.Tell() < h.End {
			name, err := c.ParseAssetName()
			if err != nil {
				return err
			}
			if name != scriptListAssetName {
				return ErrUnknownAsset
			}
			sl, err := ParseScriptList(c)
			if err != nil {
				return err
			}
			p.ScriptLists = append(p.ScriptLists, *sl)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("finished parsing PlayerScriptsList")
	return p, nil
}

// Write writes the PlayerScriptsList asset.
func (p *PlayerScriptsList) Write(c *WriteContext) error {
	return c.WriteAsset(playerScriptsListAssetName, p.Version, func() error {
		for _, sl := range p.ScriptLists {
			c.WriteAssetName(scriptListAssetName)
			if err := sl.Write(c); err != nil {
				return err
			}
		}
		return nil
	})
}
