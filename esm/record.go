// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

// Record is a decoded top-level record. The set of implementations is closed;
// use a type switch or RecordsOf to reach the concrete kind.
type Record interface {
	// Kind returns the record's tag. It is valid on a nil receiver.
	Kind() Tag
	// Meta returns the fields every record carries.
	Meta() *Base

	// decodeField decodes one sub-record and reports whether the kind knows it.
	decodeField(f *fieldReader) bool
}

// Base holds the fields every record carries.
type Base struct {
	Header  RecordHeader
	Offset  int    // Stream offset of the record header
	ID      string // Identifier, empty for kinds without one
	Deleted bool   // DELE sub-record present
}

// Meta returns b.
func (b *Base) Meta() *Base {
	return b
}

// decodeCommon handles the sub-records with the same meaning in every kind.
func (b *Base) decodeCommon(f *fieldReader) bool {
	switch f.tag {
	case tagNAME:
		b.ID = f.str()
	case tagDELE:
		f.skipRest()
		b.Deleted = true
	default:
		return false
	}
	return true
}

// newRecord returns an empty record for a top-level tag, or nil if the tag
// has no decoder.
func newRecord(tag Tag) Record {
	switch tag {
	case KindFileHeader:
		return &FileHeader{}
	case KindGameSetting:
		return &GameSetting{}
	case KindGlobal:
		return &Global{}
	case KindClass:
		return &Class{}
	case KindFaction:
		return &Faction{}
	case KindRace:
		return &Race{}
	case KindSound:
		return &Sound{}
	case KindSkill:
		return &Skill{}
	case KindMagicEffect:
		return &MagicEffect{}
	case KindScript:
		return &Script{}
	case KindRegion:
		return &Region{}
	case KindBirthsign:
		return &Birthsign{}
	case KindLandTexture:
		return &LandTexture{}
	case KindStatic:
		return &Static{}
	case KindDoor:
		return &Door{}
	case KindMisc:
		return &Misc{}
	case KindWeapon:
		return &Weapon{}
	case KindContainer:
		return &Container{}
	case KindSpell:
		return &Spell{}
	case KindCreature:
		return &Creature{}
	case KindBodyPart:
		return &BodyPart{}
	case KindLight:
		return &Light{}
	case KindEnchantment:
		return &Enchantment{}
	case KindNPC:
		return &NPC{}
	case KindArmor:
		return &Armor{}
	case KindClothing:
		return &Clothing{}
	case KindRepairItem:
		return &RepairItem{}
	case KindActivator:
		return &Activator{}
	case KindApparatus:
		return &Apparatus{}
	case KindLockpick:
		return &Lockpick{}
	case KindProbe:
		return &Probe{}
	case KindIngredient:
		return &Ingredient{}
	case KindBook:
		return &Book{}
	case KindPotion:
		return &Potion{}
	case KindItemList:
		return &ItemList{}
	case KindCreatureList:
		return &CreatureList{}
	case KindCell:
		return &Cell{}
	case KindLand:
		return &Land{}
	case KindPathGrid:
		return &PathGrid{}
	case KindSoundGen:
		return &SoundGen{}
	case KindDialogue:
		return &Dialogue{}
	case KindInfo:
		return &Info{}
	case KindStartScript:
		return &StartScript{}
	default:
		return nil
	}
}

// Appearance holds the presentation fields shared by placeable objects.
type Appearance struct {
	Model  string // MODL
	Name   string // FNAM, display name
	Script string // SCRI
	Icon   string // ITEX
}

func (a *Appearance) decodeAppearance(f *fieldReader) bool {
	switch f.tag {
	case tagMODL:
		a.Model = f.str()
	case tagFNAM:
		a.Name = f.str()
	case tagSCRI:
		a.Script = f.str()
	case tagITEX:
		a.Icon = f.str()
	default:
		return false
	}
	return true
}

// Effect is one magic effect of a spell, enchantment or potion (ENAM, 24 bytes).
type Effect struct {
	EffectID     int16
	Skill        int8
	Attribute    int8
	Range        int32 // 0 self, 1 touch, 2 target
	Area         int32
	Duration     int32
	MagnitudeMin int32
	MagnitudeMax int32
}

func readEffect(f *fieldReader) Effect {
	return Effect{
		EffectID:     f.i16(),
		Skill:        f.i8(),
		Attribute:    f.i8(),
		Range:        f.i32(),
		Area:         f.i32(),
		Duration:     f.i32(),
		MagnitudeMin: f.i32(),
		MagnitudeMax: f.i32(),
	}
}

// InventoryItem is a carried or contained item stack (NPCO, 36 bytes).
// A negative count marks items that restock.
type InventoryItem struct {
	Count int32
	ID    string
}

func readInventoryItem(f *fieldReader) InventoryItem {
	return InventoryItem{Count: f.i32(), ID: f.fixed(32)}
}

// Transform is a position and an Euler rotation in radians.
type Transform struct {
	Position [3]float32
	Rotation [3]float32
}

func readTransform(f *fieldReader) Transform {
	return Transform{Position: f.vec3(), Rotation: f.vec3()}
}

// GridCoord identifies an exterior cell.
type GridCoord struct {
	X, Y int32
}

// BipedPart maps a body slot to the male and female body part models of a
// wearable item (INDX followed by BNAM and CNAM).
type BipedPart struct {
	Index  uint8
	Male   string
	Female string
}

// decodeBipedPart handles the INDX/BNAM/CNAM run of armor and clothing.
func decodeBipedPart(parts *[]BipedPart, f *fieldReader) bool {
	switch f.tag {
	case tagINDX:
		*parts = append(*parts, BipedPart{Index: f.u8()})
	case tagBNAM, tagCNAM:
		if len(*parts) == 0 {
			return false
		}
		last := &(*parts)[len(*parts)-1]
		if f.tag == tagBNAM {
			last.Male = f.str()
		} else {
			last.Female = f.str()
		}
	default:
		return false
	}
	return true
}
