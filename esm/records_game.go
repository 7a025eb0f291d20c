// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

// FileHeader is the TES3 record that opens every database file.
type FileHeader struct {
	Base
	Version     float32
	FileType    uint32 // 0 plugin, 1 master, 32 save
	Author      string
	Description string
	RecordCount uint32
	Masters     []Master
}

// Master is a database file this one depends on.
type Master struct {
	Name string
	Size uint64
}

func (*FileHeader) Kind() Tag { return KindFileHeader }

func (r *FileHeader) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagHEDR:
		r.Version = f.f32()
		r.FileType = f.u32()
		r.Author = f.fixed(32)
		r.Description = f.fixed(256)
		r.RecordCount = f.u32()
	case tagMAST:
		r.Masters = append(r.Masters, Master{Name: f.str()})
	case tagDATA:
		if len(r.Masters) == 0 {
			return false
		}
		r.Masters[len(r.Masters)-1].Size = f.u64()
	default:
		return false
	}
	return true
}

// GameSetting is a named engine constant (GMST). Exactly one of the value
// fields is meaningful, as reported by Type.
type GameSetting struct {
	Base
	Type        ValueType
	StringValue string
	IntValue    int32
	FloatValue  float32
}

// ValueType says which value field of a setting or global is set.
type ValueType uint8

const (
	ValueNone ValueType = iota
	ValueString
	ValueInt
	ValueFloat
)

func (*GameSetting) Kind() Tag { return KindGameSetting }

func (r *GameSetting) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagSTRV:
		r.Type, r.StringValue = ValueString, f.str()
	case tagINTV:
		r.Type, r.IntValue = ValueInt, f.i32()
	case tagFLTV:
		r.Type, r.FloatValue = ValueFloat, f.f32()
	default:
		return false
	}
	return true
}

// Global is a script-visible global variable (GLOB). All values are stored
// as floats; VarType is 's' short, 'l' long or 'f' float.
type Global struct {
	Base
	VarType byte
	Value   float32
}

func (*Global) Kind() Tag { return KindGlobal }

func (r *Global) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFNAM:
		r.VarType = f.u8()
	case tagFLTV:
		r.Value = f.f32()
	default:
		return false
	}
	return true
}

// Script is a compiled script (SCPT). Its ID comes from the SCHD header.
type Script struct {
	Base
	NumShorts    uint32
	NumLongs     uint32
	NumFloats    uint32
	DataSize     uint32
	LocalVarSize uint32
	Variables    []string
	Bytecode     []byte
	Text         string
}

func (*Script) Kind() Tag { return KindScript }

func (r *Script) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagSCHD:
		r.ID = f.fixed(32)
		r.NumShorts = f.u32()
		r.NumLongs = f.u32()
		r.NumFloats = f.u32()
		r.DataSize = f.u32()
		r.LocalVarSize = f.u32()
	case tagSCVR:
		r.Variables = f.list()
	case tagSCDT:
		r.Bytecode = f.rest()
	case tagSCTX:
		r.Text = f.str()
	default:
		return false
	}
	return true
}

// StartScript names a script that runs when a game starts (SSCR).
// Its ID is the numeric string in DATA; NAME is the script.
type StartScript struct {
	Base
	Script string
}

func (*StartScript) Kind() Tag { return KindStartScript }

func (r *StartScript) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagDATA:
		r.ID = f.str()
	case tagNAME:
		r.Script = f.str()
	default:
		return false
	}
	return true
}

// Sound is a sound file with playback ranges (SOUN).
type Sound struct {
	Base
	File     string
	Volume   uint8
	MinRange uint8
	MaxRange uint8
}

func (*Sound) Kind() Tag { return KindSound }

func (r *Sound) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFNAM:
		r.File = f.str()
	case tagDATA:
		r.Volume = f.u8()
		r.MinRange = f.u8()
		r.MaxRange = f.u8()
	default:
		return false
	}
	return true
}

// SoundGen binds a creature event to a sound (SNDG).
type SoundGen struct {
	Base
	Type     int32 // 0 left foot … 7 land
	Creature string
	Sound    string
}

func (*SoundGen) Kind() Tag { return KindSoundGen }

func (r *SoundGen) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagDATA:
		r.Type = f.i32()
	case tagCNAM:
		r.Creature = f.str()
	case tagSNAM:
		r.Sound = f.str()
	default:
		return false
	}
	return true
}

// Region is an exterior region with weather odds and ambient sounds (REGN).
type Region struct {
	Base
	Name          string
	WeatherChance []uint8 // clear, cloudy, foggy, overcast, rain, thunder, ash, blight[, snow, blizzard]
	SleepCreature string
	MapColor      uint32
	Sounds        []RegionSound
}

// RegionSound is an ambient sound and its chance to play.
type RegionSound struct {
	Sound  string
	Chance uint8
}

func (*Region) Kind() Tag { return KindRegion }

func (r *Region) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFNAM:
		r.Name = f.str()
	case tagWEAT:
		r.WeatherChance = f.rest()
	case tagBNAM:
		r.SleepCreature = f.str()
	case tagCNAM:
		r.MapColor = f.u32()
	case tagSNAM:
		r.Sounds = append(r.Sounds, RegionSound{Sound: f.fixed(32), Chance: f.u8()})
	default:
		return false
	}
	return true
}

// Birthsign is a character birthsign (BSGN).
type Birthsign struct {
	Base
	Name        string
	Texture     string
	Description string
	Spells      []string
}

func (*Birthsign) Kind() Tag { return KindBirthsign }

func (r *Birthsign) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFNAM:
		r.Name = f.str()
	case tagTNAM:
		r.Texture = f.str()
	case tagDESC:
		r.Description = f.str()
	case tagNPCS:
		r.Spells = append(r.Spells, f.fixed(32))
	default:
		return false
	}
	return true
}

// Class is a character class (CLAS).
type Class struct {
	Base
	Name           string
	Attributes     [2]int32
	Specialization int32
	MinorSkills    [5]int32
	MajorSkills    [5]int32
	Playable       bool
	Services       uint32
	Description    string
}

func (*Class) Kind() Tag { return KindClass }

func (r *Class) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFNAM:
		r.Name = f.str()
	case tagCLDT:
		r.Attributes = [2]int32{f.i32(), f.i32()}
		r.Specialization = f.i32()
		for i := range r.MinorSkills {
			r.MinorSkills[i] = f.i32()
			r.MajorSkills[i] = f.i32()
		}
		r.Playable = f.u32()&1 != 0
		r.Services = f.u32()
	case tagDESC:
		r.Description = f.str()
	default:
		return false
	}
	return true
}

// Faction is a joinable faction (FACT).
type Faction struct {
	Base
	Name       string
	RankNames  []string
	Attributes [2]int32
	Ranks      [10]FactionRank
	Skills     [7]int32
	Hidden     bool
	Reactions  []FactionReaction
}

// FactionRank holds the requirements of one rank.
type FactionRank struct {
	Attribute1 int32
	Attribute2 int32
	Skill1     int32
	Skill2     int32
	Reputation int32
}

// FactionReaction is this faction's disposition towards another.
type FactionReaction struct {
	Faction  string
	Reaction int32
}

func (*Faction) Kind() Tag { return KindFaction }

func (r *Faction) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFNAM:
		r.Name = f.str()
	case tagRNAM:
		r.RankNames = append(r.RankNames, f.fixed(32))
	case tagFADT:
		r.Attributes = [2]int32{f.i32(), f.i32()}
		for i := range r.Ranks {
			r.Ranks[i] = FactionRank{
				Attribute1: f.i32(),
				Attribute2: f.i32(),
				Skill1:     f.i32(),
				Skill2:     f.i32(),
				Reputation: f.i32(),
			}
		}
		for i := range r.Skills {
			r.Skills[i] = f.i32()
		}
		r.Hidden = f.u32()&1 != 0
	case tagANAM:
		r.Reactions = append(r.Reactions, FactionReaction{Faction: f.str()})
	case tagINTV:
		if len(r.Reactions) == 0 {
			return false
		}
		r.Reactions[len(r.Reactions)-1].Reaction = f.i32()
	default:
		return false
	}
	return true
}

// Race is a playable or creature race (RACE).
type Race struct {
	Base
	Name        string
	SkillBonus  [7]SkillBonus
	Attributes  [8][2]int32 // male, female
	Height      [2]float32  // male, female
	Weight      [2]float32  // male, female
	Flags       uint32      // 1 playable, 2 beast race
	Spells      []string
	Description string
}

// SkillBonus is a racial skill modifier.
type SkillBonus struct {
	Skill int32
	Bonus int32
}

func (*Race) Kind() Tag { return KindRace }

func (r *Race) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFNAM:
		r.Name = f.str()
	case tagRADT:
		for i := range r.SkillBonus {
			r.SkillBonus[i] = SkillBonus{Skill: f.i32(), Bonus: f.i32()}
		}
		for i := range r.Attributes {
			r.Attributes[i] = [2]int32{f.i32(), f.i32()}
		}
		r.Height = [2]float32{f.f32(), f.f32()}
		r.Weight = [2]float32{f.f32(), f.f32()}
		r.Flags = f.u32()
	case tagNPCS:
		r.Spells = append(r.Spells, f.fixed(32))
	case tagDESC:
		r.Description = f.str()
	default:
		return false
	}
	return true
}

// Skill describes one of the 27 skills (SKIL). Skills have no ID; they are
// identified by Index.
type Skill struct {
	Base
	Index          int32
	Attribute      int32
	Specialization int32
	UseValue       [4]float32
	Description    string
}

func (*Skill) Kind() Tag { return KindSkill }

func (r *Skill) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagINDX:
		r.Index = f.i32()
	case tagSKDT:
		r.Attribute = f.i32()
		r.Specialization = f.i32()
		for i := range r.UseValue {
			r.UseValue[i] = f.f32()
		}
	case tagDESC:
		r.Description = f.str()
	default:
		return false
	}
	return true
}

// MagicEffect describes a magic effect (MGEF). Effects have no ID; they are
// identified by Index.
type MagicEffect struct {
	Base
	Index       int32
	School      int32
	BaseCost    float32
	Flags       uint32
	Color       [3]int32
	Speed       float32
	Size        float32
	SizeCap     float32
	Icon        string
	Particle    string
	CastVisual  string
	BoltVisual  string
	HitVisual   string
	AreaVisual  string
	Description string
	CastSound   string
	BoltSound   string
	HitSound    string
	AreaSound   string
}

func (*MagicEffect) Kind() Tag { return KindMagicEffect }

func (r *MagicEffect) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagINDX:
		r.Index = f.i32()
	case tagMEDT:
		r.School = f.i32()
		r.BaseCost = f.f32()
		r.Flags = f.u32()
		r.Color = [3]int32{f.i32(), f.i32(), f.i32()}
		r.Speed = f.f32()
		r.Size = f.f32()
		r.SizeCap = f.f32()
	case tagITEX:
		r.Icon = f.str()
	case tagPTEX:
		r.Particle = f.str()
	case tagCVFX:
		r.CastVisual = f.str()
	case tagBVFX:
		r.BoltVisual = f.str()
	case tagHVFX:
		r.HitVisual = f.str()
	case tagAVFX:
		r.AreaVisual = f.str()
	case tagDESC:
		r.Description = f.str()
	case tagCSND:
		r.CastSound = f.str()
	case tagBSND:
		r.BoltSound = f.str()
	case tagHSND:
		r.HitSound = f.str()
	case tagASND:
		r.AreaSound = f.str()
	default:
		return false
	}
	return true
}
