// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

// LandTexture names a texture used by landscape VTEX grids (LTEX).
type LandTexture struct {
	Base
	Index   int32
	Texture string
}

func (*LandTexture) Kind() Tag { return KindLandTexture }

func (r *LandTexture) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagINTV:
		r.Index = f.i32()
	case tagDATA:
		r.Texture = f.str()
	default:
		return false
	}
	return true
}

// Static is a placeable object with only a model (STAT).
type Static struct {
	Base
	Model string
}

func (*Static) Kind() Tag { return KindStatic }

func (r *Static) decodeField(f *fieldReader) bool {
	if f.tag != tagMODL {
		return false
	}
	r.Model = f.str()
	return true
}

// Activator is a scripted object the player can use (ACTI).
type Activator struct {
	Base
	Appearance
}

func (*Activator) Kind() Tag { return KindActivator }

func (r *Activator) decodeField(f *fieldReader) bool {
	return r.decodeAppearance(f)
}

// Door is a door or load door (DOOR).
type Door struct {
	Base
	Appearance
	OpenSound  string
	CloseSound string
}

func (*Door) Kind() Tag { return KindDoor }

func (r *Door) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagSNAM:
		r.OpenSound = f.str()
	case tagANAM:
		r.CloseSound = f.str()
	default:
		return r.decodeAppearance(f)
	}
	return true
}

// Misc is a miscellaneous item (MISC).
type Misc struct {
	Base
	Appearance
	Weight float32
	Value  uint32
	Flags  uint32
}

func (*Misc) Kind() Tag { return KindMisc }

func (r *Misc) decodeField(f *fieldReader) bool {
	if f.tag != tagMCDT {
		return r.decodeAppearance(f)
	}
	r.Weight = f.f32()
	r.Value = f.u32()
	r.Flags = f.u32()
	return true
}

// Weapon is a melee, ranged or thrown weapon or ammunition (WEAP).
type Weapon struct {
	Base
	Appearance
	Enchantment string
	Weight      float32
	Value       uint32
	Type        uint16
	Health      uint16
	Speed       float32
	Reach       float32
	Charge      uint16
	Chop        [2]uint8 // min, max
	Slash       [2]uint8
	Thrust      [2]uint8
	Flags       uint32
}

func (*Weapon) Kind() Tag { return KindWeapon }

func (r *Weapon) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagENAM:
		r.Enchantment = f.str()
	case tagWPDT:
		r.Weight = f.f32()
		r.Value = f.u32()
		r.Type = f.u16()
		r.Health = f.u16()
		r.Speed = f.f32()
		r.Reach = f.f32()
		r.Charge = f.u16()
		r.Chop = [2]uint8{f.u8(), f.u8()}
		r.Slash = [2]uint8{f.u8(), f.u8()}
		r.Thrust = [2]uint8{f.u8(), f.u8()}
		r.Flags = f.u32()
	default:
		return r.decodeAppearance(f)
	}
	return true
}

// Container holds items (CONT).
type Container struct {
	Base
	Appearance
	Capacity float32
	Flags    uint32 // 1 organic, 2 respawns
	Items    []InventoryItem
}

func (*Container) Kind() Tag { return KindContainer }

func (r *Container) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagCNDT:
		r.Capacity = f.f32()
	case tagFLAG:
		r.Flags = f.u32()
	case tagNPCO:
		r.Items = append(r.Items, readInventoryItem(f))
	default:
		return r.decodeAppearance(f)
	}
	return true
}

// Light is a light source, carried or not (LIGH).
type Light struct {
	Base
	Appearance
	Sound  string
	Weight float32
	Value  uint32
	Time   int32
	Radius uint32
	Color  uint32
	Flags  uint32
}

func (*Light) Kind() Tag { return KindLight }

func (r *Light) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagSNAM:
		r.Sound = f.str()
	case tagLHDT:
		r.Weight = f.f32()
		r.Value = f.u32()
		r.Time = f.i32()
		r.Radius = f.u32()
		r.Color = f.u32()
		r.Flags = f.u32()
	default:
		return r.decodeAppearance(f)
	}
	return true
}

// Armor is a piece of armor (ARMO).
type Armor struct {
	Base
	Appearance
	Enchantment string
	Type        uint32
	Weight      float32
	Value       uint32
	Health      uint32
	Charge      uint32
	Rating      uint32
	Parts       []BipedPart
}

func (*Armor) Kind() Tag { return KindArmor }

func (r *Armor) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagENAM:
		r.Enchantment = f.str()
	case tagAODT:
		r.Type = f.u32()
		r.Weight = f.f32()
		r.Value = f.u32()
		r.Health = f.u32()
		r.Charge = f.u32()
		r.Rating = f.u32()
	case tagINDX, tagBNAM, tagCNAM:
		return decodeBipedPart(&r.Parts, f)
	default:
		return r.decodeAppearance(f)
	}
	return true
}

// Clothing is a wearable non-armor item (CLOT).
type Clothing struct {
	Base
	Appearance
	Enchantment string
	Type        uint32
	Weight      float32
	Value       uint16
	Charge      uint16
	Parts       []BipedPart
}

func (*Clothing) Kind() Tag { return KindClothing }

func (r *Clothing) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagENAM:
		r.Enchantment = f.str()
	case tagCTDT:
		r.Type = f.u32()
		r.Weight = f.f32()
		r.Value = f.u16()
		r.Charge = f.u16()
	case tagINDX, tagBNAM, tagCNAM:
		return decodeBipedPart(&r.Parts, f)
	default:
		return r.decodeAppearance(f)
	}
	return true
}

// Tool holds the data shared by repair items, lockpicks and probes.
type Tool struct {
	Weight  float32
	Value   uint32
	Uses    uint32
	Quality float32
}

// RepairItem is a repair hammer or tongs (REPA).
type RepairItem struct {
	Base
	Appearance
	Tool
}

func (*RepairItem) Kind() Tag { return KindRepairItem }

func (r *RepairItem) decodeField(f *fieldReader) bool {
	if f.tag != tagRIDT {
		return r.decodeAppearance(f)
	}
	r.Weight = f.f32()
	r.Value = f.u32()
	r.Uses = f.u32()
	r.Quality = f.f32()
	return true
}

// Lockpick is a lockpick (LOCK).
type Lockpick struct {
	Base
	Appearance
	Tool
}

func (*Lockpick) Kind() Tag { return KindLockpick }

func (r *Lockpick) decodeField(f *fieldReader) bool {
	if f.tag != tagLKDT {
		return r.decodeAppearance(f)
	}
	r.Tool = readTool(f)
	return true
}

// Probe is a trap probe (PROB).
type Probe struct {
	Base
	Appearance
	Tool
}

func (*Probe) Kind() Tag { return KindProbe }

func (r *Probe) decodeField(f *fieldReader) bool {
	if f.tag != tagPBDT {
		return r.decodeAppearance(f)
	}
	r.Tool = readTool(f)
	return true
}

// readTool reads the LKDT/PBDT layout, which orders quality before uses.
func readTool(f *fieldReader) Tool {
	var t Tool
	t.Weight = f.f32()
	t.Value = f.u32()
	t.Quality = f.f32()
	t.Uses = f.u32()
	return t
}

// Apparatus is an alchemy apparatus (APPA).
type Apparatus struct {
	Base
	Appearance
	Type    uint32 // 0 mortar and pestle, 1 alembic, 2 calcinator, 3 retort
	Quality float32
	Weight  float32
	Value   uint32
}

func (*Apparatus) Kind() Tag { return KindApparatus }

func (r *Apparatus) decodeField(f *fieldReader) bool {
	if f.tag != tagAADT {
		return r.decodeAppearance(f)
	}
	r.Type = f.u32()
	r.Quality = f.f32()
	r.Weight = f.f32()
	r.Value = f.u32()
	return true
}

// Ingredient is an alchemy ingredient (INGR). Unused effect slots hold -1.
type Ingredient struct {
	Base
	Appearance
	Weight     float32
	Value      uint32
	Effects    [4]int32
	Skills     [4]int32
	Attributes [4]int32
}

func (*Ingredient) Kind() Tag { return KindIngredient }

func (r *Ingredient) decodeField(f *fieldReader) bool {
	if f.tag != tagIRDT {
		return r.decodeAppearance(f)
	}
	r.Weight = f.f32()
	r.Value = f.u32()
	for i := range r.Effects {
		r.Effects[i] = f.i32()
	}
	for i := range r.Skills {
		r.Skills[i] = f.i32()
	}
	for i := range r.Attributes {
		r.Attributes[i] = f.i32()
	}
	return true
}

// Book is a book or scroll (BOOK).
type Book struct {
	Base
	Appearance
	Enchantment string
	Text        string
	Weight      float32
	Value       uint32
	Scroll      bool
	Skill       int32 // Skill taught on reading, -1 for none
	Charge      uint32
}

func (*Book) Kind() Tag { return KindBook }

func (r *Book) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagENAM:
		r.Enchantment = f.str()
	case tagTEXT:
		r.Text = f.str()
	case tagBKDT:
		r.Weight = f.f32()
		r.Value = f.u32()
		r.Scroll = f.u32() != 0
		r.Skill = f.i32()
		r.Charge = f.u32()
	default:
		return r.decodeAppearance(f)
	}
	return true
}

// BodyPart is a body mesh used by NPCs and worn items (BODY).
type BodyPart struct {
	Base
	Model   string
	Race    string // FNAM
	Part    uint8
	Vampire bool
	Flags   uint8 // 1 female, 2 not playable
	Type    uint8 // 0 skin, 1 clothing, 2 armor
}

func (*BodyPart) Kind() Tag { return KindBodyPart }

func (r *BodyPart) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagMODL:
		r.Model = f.str()
	case tagFNAM:
		r.Race = f.str()
	case tagBYDT:
		r.Part = f.u8()
		r.Vampire = f.u8() != 0
		r.Flags = f.u8()
		r.Type = f.u8()
	default:
		return false
	}
	return true
}
