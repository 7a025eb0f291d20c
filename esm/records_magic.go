// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

// Spell is a spell, ability, disease or power (SPEL).
type Spell struct {
	Base
	Name    string
	Type    uint32
	Cost    uint32
	Flags   uint32
	Effects []Effect
}

func (*Spell) Kind() Tag { return KindSpell }

func (r *Spell) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFNAM:
		r.Name = f.str()
	case tagSPDT:
		r.Type = f.u32()
		r.Cost = f.u32()
		r.Flags = f.u32()
	case tagENAM:
		r.Effects = append(r.Effects, readEffect(f))
	default:
		return false
	}
	return true
}

// Enchantment is an item enchantment (ENCH).
type Enchantment struct {
	Base
	Type     uint32 // 0 cast once, 1 on strike, 2 when used, 3 constant
	Cost     uint32
	Charge   uint32
	AutoCalc bool
	Effects  []Effect
}

func (*Enchantment) Kind() Tag { return KindEnchantment }

func (r *Enchantment) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagENDT:
		r.Type = f.u32()
		r.Cost = f.u32()
		r.Charge = f.u32()
		r.AutoCalc = f.u32()&1 != 0
	case tagENAM:
		r.Effects = append(r.Effects, readEffect(f))
	default:
		return false
	}
	return true
}

// Potion is a potion (ALCH). Its icon is stored under TEXT, not ITEX.
type Potion struct {
	Base
	Appearance
	Weight   float32
	Value    uint32
	AutoCalc bool
	Effects  []Effect
}

func (*Potion) Kind() Tag { return KindPotion }

func (r *Potion) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagTEXT:
		r.Icon = f.str()
	case tagALDT:
		r.Weight = f.f32()
		r.Value = f.u32()
		r.AutoCalc = f.u32()&1 != 0
	case tagENAM:
		r.Effects = append(r.Effects, readEffect(f))
	default:
		return r.decodeAppearance(f)
	}
	return true
}

// LeveledEntry is one candidate of a leveled list.
type LeveledEntry struct {
	ID    string
	Level uint16
}

// LeveledList holds the fields shared by leveled item and creature lists.
type LeveledList struct {
	Flags      uint32 // 1 calculate from all levels, 2 each item (items only)
	ChanceNone uint8
	Count      uint32 // Declared entry count
	Entries    []LeveledEntry
}

// decodeLeveled handles DATA, NNAM, INDX, INTV and the per-kind entry tag.
func (l *LeveledList) decodeLeveled(f *fieldReader, entryTag Tag) bool {
	switch f.tag {
	case tagDATA:
		l.Flags = f.u32()
	case tagNNAM:
		l.ChanceNone = f.u8()
	case tagINDX:
		l.Count = f.u32()
	case entryTag:
		l.Entries = append(l.Entries, LeveledEntry{ID: f.str()})
	case tagINTV:
		if len(l.Entries) == 0 {
			return false
		}
		l.Entries[len(l.Entries)-1].Level = f.u16()
	default:
		return false
	}
	return true
}

// ItemList is a leveled item list (LEVI).
type ItemList struct {
	Base
	LeveledList
}

func (*ItemList) Kind() Tag { return KindItemList }

func (r *ItemList) decodeField(f *fieldReader) bool {
	return r.decodeLeveled(f, tagINAM)
}

// CreatureList is a leveled creature list (LEVC).
type CreatureList struct {
	Base
	LeveledList
}

func (*CreatureList) Kind() Tag { return KindCreatureList }

func (r *CreatureList) decodeField(f *fieldReader) bool {
	return r.decodeLeveled(f, tagCNAM)
}
