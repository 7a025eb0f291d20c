// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suprsokr/go-tes3/esm"
	"github.com/suprsokr/go-tes3/internal/testutil"
)

// readOne decodes a single-record stream and returns the record as T.
func readOne[T esm.Record](t *testing.T, record []byte) T {
	t.Helper()
	db, err := esm.Read(record)
	require.NoError(t, err)
	recs := esm.RecordsOf[T](db)
	require.Len(t, recs, 1)
	return recs[0]
}

func effect(id int16, rng, magMin, magMax int32) []byte {
	return testutil.LE().I16(id).I8(-1).I8(-1).I32(rng).I32(0).I32(30).I32(magMin).I32(magMax).Bytes()
}

func TestFileHeader(t *testing.T) {
	rec := readOne[*esm.FileHeader](t, testutil.Record("TES3",
		testutil.Sub("HEDR", testutil.LE().F32(1.3).U32(0).
			Fixed("Bethesda Softworks", 32).Fixed("The main data file", 256).U32(48000).Bytes()),
		testutil.Sub("MAST", testutil.Zstring("Morrowind.esm")),
		testutil.Sub("DATA", testutil.LE().U64(79837557).Bytes()),
		testutil.Sub("MAST", testutil.Zstring("Tribunal.esm")),
		testutil.Sub("DATA", testutil.LE().U64(4565686).Bytes()),
	))

	assert.InDelta(t, 1.3, rec.Version, 1e-6)
	assert.Equal(t, "Bethesda Softworks", rec.Author)
	assert.Equal(t, "The main data file", rec.Description)
	assert.Equal(t, uint32(48000), rec.RecordCount)
	assert.Equal(t, []esm.Master{
		{Name: "Morrowind.esm", Size: 79837557},
		{Name: "Tribunal.esm", Size: 4565686},
	}, rec.Masters)
}

func TestGameSettingValues(t *testing.T) {
	tests := []struct {
		name string
		sub  testutil.Subrecord
		want esm.GameSetting
	}{
		{"string", testutil.Sub("STRV", []byte("Yes")), esm.GameSetting{Type: esm.ValueString, StringValue: "Yes"}},
		{"int", testutil.Sub("INTV", testutil.LE().I32(-4).Bytes()), esm.GameSetting{Type: esm.ValueInt, IntValue: -4}},
		{"float", testutil.Sub("FLTV", testutil.LE().F32(0.5).Bytes()), esm.GameSetting{Type: esm.ValueFloat, FloatValue: 0.5}},
		{"none", testutil.Sub("NAME", testutil.Zstring("sEmpty")), esm.GameSetting{Type: esm.ValueNone}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := readOne[*esm.GameSetting](t, testutil.Record("GMST", tc.sub))
			assert.Equal(t, tc.want.Type, rec.Type)
			assert.Equal(t, tc.want.StringValue, rec.StringValue)
			assert.Equal(t, tc.want.IntValue, rec.IntValue)
			assert.Equal(t, tc.want.FloatValue, rec.FloatValue)
		})
	}
}

func TestScript(t *testing.T) {
	rec := readOne[*esm.Script](t, testutil.Record("SCPT",
		testutil.Sub("SCHD", testutil.LE().Fixed("LocalScript", 32).
			U32(2).U32(1).U32(0).U32(7).U32(12).Bytes()),
		testutil.Sub("SCVR", []byte("done\x00state\x00count\x00")),
		testutil.Sub("SCDT", []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}),
		testutil.Sub("SCTX", []byte("begin LocalScript\nend")),
	))

	assert.Equal(t, "LocalScript", rec.ID)
	assert.Equal(t, uint32(2), rec.NumShorts)
	assert.Equal(t, uint32(1), rec.NumLongs)
	assert.Equal(t, uint32(7), rec.DataSize)
	assert.Equal(t, []string{"done", "state", "count"}, rec.Variables)
	assert.Len(t, rec.Bytecode, 7)
	assert.Equal(t, "begin LocalScript\nend", rec.Text)
}

func TestStartScript(t *testing.T) {
	rec := readOne[*esm.StartScript](t, testutil.Record("SSCR",
		testutil.Sub("DATA", []byte("5906247512345")),
		testutil.Sub("NAME", testutil.Zstring("Main")),
	))
	assert.Equal(t, "5906247512345", rec.ID)
	assert.Equal(t, "Main", rec.Script)
}

func TestFaction(t *testing.T) {
	fadt := testutil.LE().I32(0).I32(1)
	for i := 0; i < 10; i++ {
		fadt.I32(int32(i)).I32(int32(i)).I32(int32(10 * i)).I32(0).I32(int32(i))
	}
	for i := 0; i < 7; i++ {
		fadt.I32(int32(i + 10))
	}
	fadt.U32(0)

	rec := readOne[*esm.Faction](t, testutil.Record("FACT",
		testutil.Sub("NAME", testutil.Zstring("Fighters Guild")),
		testutil.Sub("FNAM", testutil.Zstring("Fighters Guild")),
		testutil.Sub("RNAM", testutil.LE().Fixed("Associate", 32).Bytes()),
		testutil.Sub("RNAM", testutil.LE().Fixed("Apprentice", 32).Bytes()),
		testutil.Sub("FADT", fadt.Bytes()),
		testutil.Sub("ANAM", testutil.Zstring("Thieves Guild")),
		testutil.Sub("INTV", testutil.LE().I32(-2).Bytes()),
	))

	assert.Equal(t, []string{"Associate", "Apprentice"}, rec.RankNames)
	assert.Equal(t, int32(30), rec.Ranks[3].Skill1)
	assert.Equal(t, int32(16), rec.Skills[6])
	assert.False(t, rec.Hidden)
	assert.Equal(t, []esm.FactionReaction{{Faction: "Thieves Guild", Reaction: -2}}, rec.Reactions)
}

func TestRegion(t *testing.T) {
	rec := readOne[*esm.Region](t, testutil.Record("REGN",
		testutil.Sub("NAME", testutil.Zstring("Ascadian Isles Region")),
		testutil.Sub("FNAM", testutil.Zstring("Ascadian Isles")),
		testutil.Sub("WEAT", []byte{60, 20, 5, 5, 10, 0, 0, 0}),
		testutil.Sub("BNAM", testutil.Zstring("ex_ai_sleep")),
		testutil.Sub("CNAM", testutil.LE().U32(0x00FF8800).Bytes()),
		testutil.Sub("SNAM", testutil.LE().Fixed("Birds", 32).U8(20).Bytes()),
		testutil.Sub("SNAM", testutil.LE().Fixed("Crickets", 32).U8(5).Bytes()),
	))

	assert.Equal(t, "Ascadian Isles", rec.Name)
	assert.Equal(t, []uint8{60, 20, 5, 5, 10, 0, 0, 0}, rec.WeatherChance)
	assert.Equal(t, uint32(0x00FF8800), rec.MapColor)
	assert.Equal(t, []esm.RegionSound{{"Birds", 20}, {"Crickets", 5}}, rec.Sounds)
}

func TestWeapon(t *testing.T) {
	rec := readOne[*esm.Weapon](t, testutil.Record("WEAP",
		testutil.Sub("NAME", testutil.Zstring("iron dagger")),
		testutil.Sub("MODL", testutil.Zstring("w\\w_dagger_iron.nif")),
		testutil.Sub("FNAM", testutil.Zstring("Iron Dagger")),
		testutil.Sub("WPDT", testutil.LE().F32(3).U32(10).U16(0).U16(450).
			F32(2.5).F32(1).U16(50).U8(3).U8(3).U8(4).U8(4).U8(5).U8(5).U32(0).Bytes()),
		testutil.Sub("ITEX", testutil.Zstring("w\\tx_dagger_iron.tga")),
	))

	assert.Equal(t, "Iron Dagger", rec.Name)
	assert.Equal(t, "w\\w_dagger_iron.nif", rec.Model)
	assert.Equal(t, "w\\tx_dagger_iron.tga", rec.Icon)
	assert.Equal(t, uint16(450), rec.Health)
	assert.InDelta(t, 2.5, rec.Speed, 1e-6)
	assert.Equal(t, [2]uint8{4, 4}, rec.Slash)
	assert.Equal(t, [2]uint8{5, 5}, rec.Thrust)
}

func TestArmorBodyParts(t *testing.T) {
	rec := readOne[*esm.Armor](t, testutil.Record("ARMO",
		testutil.Sub("NAME", testutil.Zstring("netch_leather_boots")),
		testutil.Sub("AODT", testutil.LE().U32(5).F32(6).U32(10).U32(100).U32(15).U32(7).Bytes()),
		testutil.Sub("INDX", []byte{0x0F}),
		testutil.Sub("BNAM", testutil.Zstring("A_Netch_Boot_Ankle")),
		testutil.Sub("INDX", []byte{0x11}),
		testutil.Sub("BNAM", testutil.Zstring("A_Netch_Boot_Foot")),
		testutil.Sub("CNAM", testutil.Zstring("A_Netch_Boot_Foot_F")),
		testutil.Sub("ENAM", testutil.Zstring("feather_en")),
	))

	assert.Equal(t, uint32(7), rec.Rating)
	assert.Equal(t, "feather_en", rec.Enchantment)
	assert.Equal(t, []esm.BipedPart{
		{Index: 0x0F, Male: "A_Netch_Boot_Ankle"},
		{Index: 0x11, Male: "A_Netch_Boot_Foot", Female: "A_Netch_Boot_Foot_F"},
	}, rec.Parts)
}

func TestBodyPartBeforeIndexIsUnknown(t *testing.T) {
	var diags []esm.Diagnostic
	db, err := esm.Read(testutil.Record("CLOT",
		testutil.Sub("BNAM", testutil.Zstring("orphan")),
	), esm.WithDiagnostics(func(d esm.Diagnostic) { diags = append(diags, d) }))
	require.NoError(t, err)

	require.Len(t, diags, 1)
	assert.Equal(t, "BNAM", diags[0].Subrecord.String())
	assert.Empty(t, esm.RecordsOf[*esm.Clothing](db)[0].Parts)
}

func TestToolLayouts(t *testing.T) {
	repair := readOne[*esm.RepairItem](t, testutil.Record("REPA",
		testutil.Sub("RIDT", testutil.LE().F32(4).U32(20).U32(10).F32(1.2).Bytes()),
	))
	assert.Equal(t, esm.Tool{Weight: 4, Value: 20, Uses: 10, Quality: 1.2}, repair.Tool)

	pick := readOne[*esm.Lockpick](t, testutil.Record("LOCK",
		testutil.Sub("LKDT", testutil.LE().F32(0.25).U32(15).F32(1.5).U32(25).Bytes()),
	))
	assert.Equal(t, esm.Tool{Weight: 0.25, Value: 15, Uses: 25, Quality: 1.5}, pick.Tool)

	probe := readOne[*esm.Probe](t, testutil.Record("PROB",
		testutil.Sub("PBDT", testutil.LE().F32(0.5).U32(10).F32(0.75).U32(5).Bytes()),
	))
	assert.Equal(t, uint32(5), probe.Uses)
}

func TestContainer(t *testing.T) {
	rec := readOne[*esm.Container](t, testutil.Record("CONT",
		testutil.Sub("NAME", testutil.Zstring("chest_small_01")),
		testutil.Sub("CNDT", testutil.LE().F32(100).Bytes()),
		testutil.Sub("FLAG", testutil.LE().U32(0x08).Bytes()),
		testutil.Sub("NPCO", testutil.LE().I32(3).Fixed("gold_001", 32).Bytes()),
		testutil.Sub("NPCO", testutil.LE().I32(-1).Fixed("random_potion", 32).Bytes()),
	))

	assert.InDelta(t, 100, rec.Capacity, 1e-6)
	assert.Equal(t, []esm.InventoryItem{{3, "gold_001"}, {-1, "random_potion"}}, rec.Items)
}

func TestMagic(t *testing.T) {
	spell := readOne[*esm.Spell](t, testutil.Record("SPEL",
		testutil.Sub("NAME", testutil.Zstring("fireball")),
		testutil.Sub("FNAM", testutil.Zstring("Fireball")),
		testutil.Sub("SPDT", testutil.LE().U32(0).U32(15).U32(0).Bytes()),
		testutil.Sub("ENAM", effect(14, 2, 10, 20)),
		testutil.Sub("ENAM", effect(16, 2, 5, 5)),
	))
	require.Len(t, spell.Effects, 2)
	assert.Equal(t, esm.Effect{
		EffectID: 14, Skill: -1, Attribute: -1, Range: 2, Duration: 30, MagnitudeMin: 10, MagnitudeMax: 20,
	}, spell.Effects[0])
	assert.Equal(t, uint32(15), spell.Cost)

	ench := readOne[*esm.Enchantment](t, testutil.Record("ENCH",
		testutil.Sub("ENDT", testutil.LE().U32(3).U32(0).U32(0).U32(1).Bytes()),
		testutil.Sub("ENAM", effect(79, 0, 10, 10)),
	))
	assert.True(t, ench.AutoCalc)
	assert.Equal(t, uint32(3), ench.Type)

	potion := readOne[*esm.Potion](t, testutil.Record("ALCH",
		testutil.Sub("NAME", testutil.Zstring("p_restore_health_s")),
		testutil.Sub("TEXT", testutil.Zstring("m\\tx_potion_standard_01.tga")),
		testutil.Sub("ALDT", testutil.LE().F32(1).U32(35).U32(0).Bytes()),
		testutil.Sub("ENAM", effect(75, 0, 10, 10)),
	))
	assert.Equal(t, "m\\tx_potion_standard_01.tga", potion.Icon)
	assert.False(t, potion.AutoCalc)
	assert.Len(t, potion.Effects, 1)
}

func TestLeveledLists(t *testing.T) {
	items := readOne[*esm.ItemList](t, testutil.Record("LEVI",
		testutil.Sub("NAME", testutil.Zstring("random_weapon")),
		testutil.Sub("DATA", testutil.LE().U32(3).Bytes()),
		testutil.Sub("NNAM", []byte{25}),
		testutil.Sub("INDX", testutil.LE().U32(2).Bytes()),
		testutil.Sub("INAM", testutil.Zstring("iron dagger")),
		testutil.Sub("INTV", testutil.LE().U16(1).Bytes()),
		testutil.Sub("INAM", testutil.Zstring("steel dagger")),
		testutil.Sub("INTV", testutil.LE().U16(5).Bytes()),
	))
	assert.Equal(t, uint8(25), items.ChanceNone)
	assert.Equal(t, uint32(2), items.Count)
	assert.Equal(t, []esm.LeveledEntry{{"iron dagger", 1}, {"steel dagger", 5}}, items.Entries)

	creatures := readOne[*esm.CreatureList](t, testutil.Record("LEVC",
		testutil.Sub("NAME", testutil.Zstring("ex_ai_sleep")),
		testutil.Sub("DATA", testutil.LE().U32(1).Bytes()),
		testutil.Sub("NNAM", []byte{0}),
		testutil.Sub("INDX", testutil.LE().U32(1).Bytes()),
		testutil.Sub("CNAM", testutil.Zstring("mudcrab")),
		testutil.Sub("INTV", testutil.LE().U16(1).Bytes()),
	))
	assert.Equal(t, []esm.LeveledEntry{{"mudcrab", 1}}, creatures.Entries)
}

func npdt52() []byte {
	f := testutil.LE().U16(12)
	for i := 0; i < 8; i++ {
		f.U8(uint8(40 + i))
	}
	for i := 0; i < 27; i++ {
		f.U8(uint8(5 + i))
	}
	return f.U8(0).U16(120).U16(80).U16(200).U8(50).U8(3).U8(2).U8(0).U32(150).Bytes()
}

func TestNPC(t *testing.T) {
	rec := readOne[*esm.NPC](t, testutil.Record("NPC_",
		testutil.Sub("NAME", testutil.Zstring("fargoth")),
		testutil.Sub("FNAM", testutil.Zstring("Fargoth")),
		testutil.Sub("RNAM", testutil.Zstring("Wood Elf")),
		testutil.Sub("CNAM", testutil.Zstring("Commoner")),
		testutil.Sub("ANAM", testutil.Zstring("")),
		testutil.Sub("BNAM", testutil.Zstring("b_n_wood elf_m_head_01")),
		testutil.Sub("KNAM", testutil.Zstring("b_n_wood elf_m_hair_01")),
		testutil.Sub("SCRI", testutil.Zstring("FargothScript")),
		testutil.Sub("NPDT", npdt52()),
		testutil.Sub("FLAG", testutil.LE().U32(0x18).Bytes()),
		testutil.Sub("NPCO", testutil.LE().I32(1).Fixed("common_shirt_01", 32).Bytes()),
		testutil.Sub("NPCS", testutil.LE().Fixed("sleep_resistance", 32).Bytes()),
		testutil.Sub("AIDT", testutil.LE().U16(30).U8(0).U8(30).U8(0).Zeros(3).U32(0).Bytes()),
		testutil.Sub("AI_W", testutil.LE().U16(512).U16(5).U8(0).
			U8(60).U8(20).U8(10).U8(0).U8(0).U8(0).U8(0).U8(0).U8(1).Bytes()),
		testutil.Sub("AI_E", testutil.LE().F32(1).F32(2).F32(3).U16(24).
			Fixed("player", 32).U8(1).U8(0).Bytes()),
		testutil.Sub("CNDT", testutil.Zstring("Seyda Neen")),
		testutil.Sub("DODT", testutil.LE().F32(100).F32(200).F32(300).F32(0).F32(0).F32(1.5).Bytes()),
		testutil.Sub("DNAM", testutil.Zstring("Balmora")),
	))

	assert.Equal(t, "Fargoth", rec.Name)
	assert.Equal(t, "Wood Elf", rec.Race)
	assert.Equal(t, "FargothScript", rec.Script)
	assert.Equal(t, "b_n_wood elf_m_hair_01", rec.Hair)

	assert.False(t, rec.Stats.AutoCalc)
	assert.Equal(t, uint16(12), rec.Stats.Level)
	assert.Equal(t, uint8(47), rec.Stats.Attributes[7])
	assert.Equal(t, uint8(31), rec.Stats.Skills[26])
	assert.Equal(t, uint16(200), rec.Stats.Fatigue)
	assert.Equal(t, uint32(150), rec.Stats.Gold)

	assert.Equal(t, uint32(0x18), rec.Flags)
	assert.Equal(t, []string{"sleep_resistance"}, rec.Spells)
	assert.Equal(t, uint8(30), rec.AI.Flee)

	require.Len(t, rec.Packages, 2)
	assert.Equal(t, uint16(512), rec.Packages[0].Distance)
	assert.Equal(t, [8]uint8{60, 20, 10}, rec.Packages[0].Idle)
	assert.True(t, rec.Packages[0].Repeat)
	assert.Equal(t, "AI_E", rec.Packages[1].Type.String())
	assert.Equal(t, "player", rec.Packages[1].Target)
	assert.Equal(t, "Seyda Neen", rec.Packages[1].Cell)

	require.Len(t, rec.Travel, 1)
	assert.Equal(t, "Balmora", rec.Travel[0].Cell)
	assert.Equal(t, [3]float32{100, 200, 300}, rec.Travel[0].Position)
}

func TestNPCAutoCalcStats(t *testing.T) {
	rec := readOne[*esm.NPC](t, testutil.Record("NPC_",
		testutil.Sub("NPDT", testutil.LE().U16(5).U8(40).U8(2).U8(1).Zeros(3).U32(25).Bytes()),
	))
	assert.Equal(t, esm.NPCStats{
		AutoCalc:    true,
		Level:       5,
		Disposition: 40,
		Reputation:  2,
		Rank:        1,
		Gold:        25,
	}, rec.Stats)
}

func TestCreature(t *testing.T) {
	npdt := testutil.LE().U32(1).U32(10)
	for i := 0; i < 8; i++ {
		npdt.U32(uint32(50 + i))
	}
	npdt.U32(100).U32(50).U32(150).U32(400).U32(60).U32(70).U32(30)
	npdt.U32(1).U32(5).U32(2).U32(8).U32(3).U32(12).U32(0)

	rec := readOne[*esm.Creature](t, testutil.Record("CREA",
		testutil.Sub("NAME", testutil.Zstring("dremora")),
		testutil.Sub("MODL", testutil.Zstring("r\\dremora.nif")),
		testutil.Sub("CNAM", testutil.Zstring("dremora")),
		testutil.Sub("NPDT", npdt.Bytes()),
		testutil.Sub("FLAG", testutil.LE().U32(0x48).Bytes()),
		testutil.Sub("XSCL", testutil.LE().F32(1.1).Bytes()),
		testutil.Sub("AI_T", testutil.LE().F32(1).F32(2).F32(3).U8(1).Zeros(3).Bytes()),
		testutil.Sub("AI_A", testutil.LE().Fixed("lever", 32).U8(0).Bytes()),
	))

	assert.Equal(t, uint32(1), rec.Stats.Type)
	assert.Equal(t, uint32(57), rec.Stats.Attributes[7])
	assert.Equal(t, uint32(400), rec.Stats.Soul)
	assert.Equal(t, [3][2]uint32{{1, 5}, {2, 8}, {3, 12}}, rec.Stats.Attacks)
	assert.InDelta(t, 1.1, rec.Scale, 1e-6)
	require.Len(t, rec.Packages, 2)
	assert.Equal(t, [3]float32{1, 2, 3}, rec.Packages[0].Position)
	assert.Equal(t, "lever", rec.Packages[1].Target)
}

func TestCellReferences(t *testing.T) {
	transform := func(x, y, z float32) []byte {
		return testutil.LE().F32(x).F32(y).F32(z).F32(0).F32(0).F32(0.5).Bytes()
	}
	rec := readOne[*esm.Cell](t, testutil.Record("CELL",
		testutil.Sub("NAME", testutil.Zstring("Seyda Neen")),
		testutil.Sub("DATA", testutil.LE().U32(0x02).I32(-2).I32(-9).Bytes()),
		testutil.Sub("RGNN", testutil.Zstring("Bitter Coast Region")),
		testutil.Sub("NAM5", testutil.LE().U32(0x112233).Bytes()),
		testutil.Sub("FRMR", testutil.LE().U32(1).Bytes()),
		testutil.Sub("NAME", testutil.Zstring("ex_common_door")),
		testutil.Sub("XSCL", testutil.LE().F32(1.25).Bytes()),
		testutil.Sub("DODT", transform(1, 2, 3)),
		testutil.Sub("DNAM", testutil.Zstring("Arrille's Tradehouse")),
		testutil.Sub("FLTV", testutil.LE().I32(50).Bytes()),
		testutil.Sub("KNAM", testutil.Zstring("key_arrille")),
		testutil.Sub("DATA", transform(-14000, -70000, 120)),
		testutil.Sub("NAM0", testutil.LE().U32(2).Bytes()),
		testutil.Sub("MVRF", testutil.LE().U32(7).Bytes()),
		testutil.Sub("CNDT", testutil.LE().I32(-3).I32(-9).Bytes()),
		testutil.Sub("FRMR", testutil.LE().U32(7).Bytes()),
		testutil.Sub("NAME", testutil.Zstring("fargoth")),
		testutil.Sub("DELE", testutil.LE().U32(0).Bytes()),
		testutil.Sub("DATA", transform(0, 0, 0)),
	))

	assert.Equal(t, "Seyda Neen", rec.ID)
	assert.False(t, rec.Interior())
	assert.Equal(t, esm.GridCoord{X: -2, Y: -9}, rec.Grid)
	assert.Equal(t, "Bitter Coast Region", rec.Region)
	assert.Equal(t, uint32(2), rec.RefCount)
	assert.False(t, rec.Deleted)

	require.Len(t, rec.References, 2)
	door := rec.References[0]
	assert.Equal(t, uint32(1), door.RefNum)
	assert.Equal(t, "ex_common_door", door.ID)
	assert.InDelta(t, 1.25, door.Scale, 1e-6)
	require.NotNil(t, door.Destination)
	assert.Equal(t, "Arrille's Tradehouse", door.Destination.Cell)
	assert.Equal(t, int32(50), door.LockLevel)
	assert.Equal(t, "key_arrille", door.Key)
	assert.Equal(t, [3]float32{-14000, -70000, 120}, door.Transform.Position)

	npc := rec.References[1]
	assert.Equal(t, "fargoth", npc.ID)
	assert.True(t, npc.Deleted)
	assert.InDelta(t, 1, npc.Scale, 1e-6)

	require.Len(t, rec.Moved, 1)
	assert.Equal(t, uint32(7), rec.Moved[0].RefNum)
	assert.Equal(t, &esm.GridCoord{X: -3, Y: -9}, rec.Moved[0].Grid)
}

func TestInteriorCell(t *testing.T) {
	rec := readOne[*esm.Cell](t, testutil.Record("CELL",
		testutil.Sub("NAME", testutil.Zstring("Balmora, Guild of Mages")),
		testutil.Sub("DATA", testutil.LE().U32(esm.CellInterior|esm.CellHasWater).I32(0).I32(0).Bytes()),
		testutil.Sub("WHGT", testutil.LE().F32(-128).Bytes()),
		testutil.Sub("AMBI", testutil.LE().U32(0x202020).U32(0x404040).U32(0x101010).F32(0.75).Bytes()),
	))
	assert.True(t, rec.Interior())
	assert.InDelta(t, -128, rec.WaterHeight, 1e-6)
	require.NotNil(t, rec.Ambient)
	assert.InDelta(t, 0.75, rec.Ambient.FogDensity, 1e-6)
}

func TestLandHeights(t *testing.T) {
	vhgt := testutil.LE().F32(1).Raw(bytes.Repeat([]byte{1}, esm.LandSize*esm.LandSize)).Zeros(3).Bytes()
	vtex := testutil.LE()
	for i := 0; i < 256; i++ {
		vtex.U16(uint16(i))
	}

	rec := readOne[*esm.Land](t, testutil.Record("LAND",
		testutil.Sub("INTV", testutil.LE().I32(3).I32(-4).Bytes()),
		testutil.Sub("DATA", testutil.LE().U32(0x0F).Bytes()),
		testutil.Sub("VNML", make([]byte, esm.LandSize*esm.LandSize*3)),
		testutil.Sub("VHGT", vhgt),
		testutil.Sub("WNAM", make([]byte, 81)),
		testutil.Sub("VTEX", vtex.Bytes()),
	))

	assert.Equal(t, esm.GridCoord{X: 3, Y: -4}, rec.Grid)
	assert.Len(t, rec.Normals, esm.LandSize*esm.LandSize*3)
	assert.Len(t, rec.WorldMapHeights, 81)
	require.Len(t, rec.Textures, 256)
	assert.Equal(t, uint16(255), rec.Textures[255])

	heights := rec.Heights()
	require.Len(t, heights, esm.LandSize*esm.LandSize)
	assert.InDelta(t, 16, heights[0], 1e-6)            // (1 + 1) * 8
	assert.InDelta(t, 24, heights[1], 1e-6)            // (2 + 1) * 8
	assert.InDelta(t, 24, heights[esm.LandSize], 1e-6) // next row starts from the row offset
	assert.InDelta(t, (1+65+64)*8, heights[len(heights)-1], 1e-6)
}

func TestLandWithoutHeights(t *testing.T) {
	rec := readOne[*esm.Land](t, landRecord(0, 0, 0))
	assert.Nil(t, rec.Heights())
}

func TestPathGrid(t *testing.T) {
	points := testutil.LE().
		I32(0).I32(0).I32(0).U8(1).U8(2).U16(0).
		I32(100).I32(0).I32(0).U8(0).U8(1).U16(0).
		I32(0).I32(100).I32(0).U8(0).U8(1).U16(0)

	rec := readOne[*esm.PathGrid](t, testutil.Record("PGRD",
		testutil.Sub("DATA", testutil.LE().I32(-2).I32(-9).U16(256).U16(3).Bytes()),
		testutil.Sub("NAME", testutil.Zstring("Seyda Neen")),
		testutil.Sub("PGRP", points.Bytes()),
		testutil.Sub("PGRC", testutil.LE().U32(1).U32(2).U32(0).U32(0).Bytes()),
	))

	assert.Empty(t, rec.ID)
	assert.Equal(t, "Seyda Neen", rec.CellName)
	assert.Equal(t, uint16(3), rec.PointCount)
	require.Len(t, rec.Points, 3)
	assert.True(t, rec.Points[0].AutoGenerated)
	assert.Equal(t, int32(100), rec.Points[1].X)

	assert.Equal(t, []uint32{1, 2}, rec.Neighbours(0))
	assert.Equal(t, []uint32{0}, rec.Neighbours(1))
	assert.Equal(t, []uint32{0}, rec.Neighbours(2))
	assert.Nil(t, rec.Neighbours(3))
}

func TestInfoConditions(t *testing.T) {
	rec := readOne[*esm.Info](t, testutil.Record("INFO",
		testutil.Sub("INAM", testutil.Zstring("19511310302976825065")),
		testutil.Sub("PNAM", testutil.Zstring("")),
		testutil.Sub("NNAM", testutil.Zstring("2978528643134228408")),
		testutil.Sub("DATA", testutil.LE().U8(0).Zeros(3).I32(30).I8(-1).I8(0).I8(-1).U8(0).Bytes()),
		testutil.Sub("ONAM", testutil.Zstring("fargoth")),
		testutil.Sub("NAME", []byte("Hello, outlander.")),
		testutil.Sub("SCVR", []byte("01X0fargoth_ring")),
		testutil.Sub("INTV", testutil.LE().I32(1).Bytes()),
		testutil.Sub("SCVR", []byte("12s0Health")),
		testutil.Sub("FLTV", testutil.LE().F32(0.5).Bytes()),
		testutil.Sub("BNAM", testutil.Zstring("Journal A1_1 10")),
		testutil.Sub("QSTN", []byte{1}),
	))

	assert.Equal(t, "19511310302976825065", rec.ID)
	assert.Equal(t, "2978528643134228408", rec.Next)
	assert.Equal(t, int32(30), rec.Disposition)
	assert.Equal(t, int8(-1), rec.Rank)
	assert.Equal(t, "fargoth", rec.Actor)
	assert.Equal(t, "Hello, outlander.", rec.Text)
	assert.Equal(t, []esm.InfoCondition{
		{Function: "01X0fargoth_ring", Int: 1},
		{Function: "12s0Health", Float: 0.5, IsFloat: true},
	}, rec.Conditions)
	assert.Equal(t, "Journal A1_1 10", rec.Result)
	assert.True(t, rec.QuestName)
}

func TestKindOnNilReceiver(t *testing.T) {
	var cell *esm.Cell
	assert.Equal(t, esm.KindCell, cell.Kind())
	assert.Equal(t, "NPC_", (*esm.NPC)(nil).Kind().String())
}
