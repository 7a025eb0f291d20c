// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

// Actor holds the fields NPCs and creatures share.
type Actor struct {
	Flags    uint32
	Items    []InventoryItem
	Spells   []string
	AI       AIData
	Packages []AIPackage
	Travel   []TravelDestination
}

// AIData holds an actor's AI settings (AIDT).
type AIData struct {
	Hello    uint16
	Fight    uint8
	Flee     uint8
	Alarm    uint8
	Services uint32
}

// AIPackage is one entry of an actor's AI package list. Which fields are
// meaningful depends on Type: AI_W wander, AI_T travel, AI_F follow,
// AI_E escort, AI_A activate.
type AIPackage struct {
	Type      Tag
	Distance  uint16
	Duration  uint16
	TimeOfDay uint8
	Idle      [8]uint8
	Position  [3]float32
	Target    string
	Cell      string // CNDT following AI_F or AI_E
	Repeat    bool
}

// TravelDestination is a transport service destination (DODT, then DNAM).
type TravelDestination struct {
	Transform
	Cell string
}

func (a *Actor) decodeActor(f *fieldReader) bool {
	switch f.tag {
	case tagFLAG:
		a.Flags = f.u32()
	case tagNPCO:
		a.Items = append(a.Items, readInventoryItem(f))
	case tagNPCS:
		a.Spells = append(a.Spells, f.fixed(32))
	case tagAIDT:
		a.AI.Hello = f.u16()
		a.AI.Fight = f.u8()
		a.AI.Flee = f.u8()
		a.AI.Alarm = f.u8()
		f.skip(3)
		a.AI.Services = f.u32()
	case tagAIW:
		p := AIPackage{Type: f.tag}
		p.Distance = f.u16()
		p.Duration = f.u16()
		p.TimeOfDay = f.u8()
		for i := range p.Idle {
			p.Idle[i] = f.u8()
		}
		p.Repeat = f.u8() != 0
		a.Packages = append(a.Packages, p)
	case tagAIT:
		p := AIPackage{Type: f.tag, Position: f.vec3()}
		p.Repeat = f.u8() != 0
		f.skip(3)
		a.Packages = append(a.Packages, p)
	case tagAIF, tagAIE:
		p := AIPackage{Type: f.tag, Position: f.vec3()}
		p.Duration = f.u16()
		p.Target = f.fixed(32)
		p.Repeat = f.u8() != 0
		f.skip(1)
		a.Packages = append(a.Packages, p)
	case tagAIA:
		p := AIPackage{Type: f.tag, Target: f.fixed(32)}
		p.Repeat = f.u8() != 0
		a.Packages = append(a.Packages, p)
	case tagCNDT:
		n := len(a.Packages)
		if n == 0 || (a.Packages[n-1].Type != tagAIF && a.Packages[n-1].Type != tagAIE) {
			return false
		}
		a.Packages[n-1].Cell = f.str()
	case tagDODT:
		a.Travel = append(a.Travel, TravelDestination{Transform: readTransform(f)})
	case tagDNAM:
		if len(a.Travel) == 0 {
			return false
		}
		a.Travel[len(a.Travel)-1].Cell = f.str()
	default:
		return false
	}
	return true
}

// NPC is a non-player character (NPC_).
type NPC struct {
	Base
	Appearance
	Actor
	Race    string
	Class   string
	Faction string
	Head    string
	Hair    string
	Stats   NPCStats
}

// NPCStats is the NPDT block. AutoCalc NPCs store only level, disposition,
// reputation, rank and gold; the other fields are then zero.
type NPCStats struct {
	AutoCalc    bool
	Level       uint16
	Attributes  [8]uint8
	Skills      [27]uint8
	Health      uint16
	Magicka     uint16
	Fatigue     uint16
	Disposition uint8
	Reputation  uint8
	Rank        uint8
	Gold        uint32
}

// Short NPDT form used by auto-calculated NPCs.
const npcStatsAutoCalcSize = 12

func (*NPC) Kind() Tag { return KindNPC }

func (r *NPC) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagRNAM:
		r.Race = f.str()
	case tagCNAM:
		r.Class = f.str()
	case tagANAM:
		r.Faction = f.str()
	case tagBNAM:
		r.Head = f.str()
	case tagKNAM:
		r.Hair = f.str()
	case tagNPDT:
		r.Stats = readNPCStats(f)
	default:
		return r.decodeAppearance(f) || r.decodeActor(f)
	}
	return true
}

func readNPCStats(f *fieldReader) NPCStats {
	var s NPCStats
	s.Level = f.u16()
	if f.size() == npcStatsAutoCalcSize {
		s.AutoCalc = true
		s.Disposition = f.u8()
		s.Reputation = f.u8()
		s.Rank = f.u8()
		f.skip(3)
		s.Gold = f.u32()
		return s
	}
	for i := range s.Attributes {
		s.Attributes[i] = f.u8()
	}
	for i := range s.Skills {
		s.Skills[i] = f.u8()
	}
	f.skip(1)
	s.Health = f.u16()
	s.Magicka = f.u16()
	s.Fatigue = f.u16()
	s.Disposition = f.u8()
	s.Reputation = f.u8()
	s.Rank = f.u8()
	f.skip(1)
	s.Gold = f.u32()
	return s
}

// Creature is a creature (CREA).
type Creature struct {
	Base
	Appearance
	Actor
	SoundGen string // CNAM, creature whose sounds this one reuses
	Scale    float32
	Stats    CreatureStats
}

// CreatureStats is the NPDT block of a creature.
type CreatureStats struct {
	Type       uint32 // 0 creature, 1 daedra, 2 undead, 3 humanoid
	Level      uint32
	Attributes [8]uint32
	Health     uint32
	Magicka    uint32
	Fatigue    uint32
	Soul       uint32
	Combat     uint32
	Magic      uint32
	Stealth    uint32
	Attacks    [3][2]uint32 // min, max
	Gold       uint32
}

func (*Creature) Kind() Tag { return KindCreature }

func (r *Creature) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagCNAM:
		r.SoundGen = f.str()
	case tagXSCL:
		r.Scale = f.f32()
	case tagNPDT:
		s := &r.Stats
		s.Type = f.u32()
		s.Level = f.u32()
		for i := range s.Attributes {
			s.Attributes[i] = f.u32()
		}
		s.Health = f.u32()
		s.Magicka = f.u32()
		s.Fatigue = f.u32()
		s.Soul = f.u32()
		s.Combat = f.u32()
		s.Magic = f.u32()
		s.Stealth = f.u32()
		for i := range s.Attacks {
			s.Attacks[i] = [2]uint32{f.u32(), f.u32()}
		}
		s.Gold = f.u32()
	default:
		return r.decodeAppearance(f) || r.decodeActor(f)
	}
	return true
}
