// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

import "strings"

// Tag is a four-character code stored little-endian, so the first character
// is the low byte.
type Tag uint32

// NewTag builds a tag from up to four characters.
func NewTag(s string) Tag {
	var t Tag
	for i := 0; i < 4 && i < len(s); i++ {
		t |= Tag(s[i]) << (8 * i)
	}
	return t
}

// String returns the four characters, with non-printable bytes as '?'.
func (t Tag) String() string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		ch := byte(t >> (8 * i))
		if ch < 0x20 || ch > 0x7E {
			ch = '?'
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// Record kinds
const (
	KindFileHeader   Tag = 'T' | 'E'<<8 | 'S'<<16 | '3'<<24 // TES3
	KindGameSetting  Tag = 'G' | 'M'<<8 | 'S'<<16 | 'T'<<24 // GMST
	KindGlobal       Tag = 'G' | 'L'<<8 | 'O'<<16 | 'B'<<24 // GLOB
	KindClass        Tag = 'C' | 'L'<<8 | 'A'<<16 | 'S'<<24 // CLAS
	KindFaction      Tag = 'F' | 'A'<<8 | 'C'<<16 | 'T'<<24 // FACT
	KindRace         Tag = 'R' | 'A'<<8 | 'C'<<16 | 'E'<<24 // RACE
	KindSound        Tag = 'S' | 'O'<<8 | 'U'<<16 | 'N'<<24 // SOUN
	KindSkill        Tag = 'S' | 'K'<<8 | 'I'<<16 | 'L'<<24 // SKIL
	KindMagicEffect  Tag = 'M' | 'G'<<8 | 'E'<<16 | 'F'<<24 // MGEF
	KindScript       Tag = 'S' | 'C'<<8 | 'P'<<16 | 'T'<<24 // SCPT
	KindRegion       Tag = 'R' | 'E'<<8 | 'G'<<16 | 'N'<<24 // REGN
	KindBirthsign    Tag = 'B' | 'S'<<8 | 'G'<<16 | 'N'<<24 // BSGN
	KindLandTexture  Tag = 'L' | 'T'<<8 | 'E'<<16 | 'X'<<24 // LTEX
	KindStatic       Tag = 'S' | 'T'<<8 | 'A'<<16 | 'T'<<24 // STAT
	KindDoor         Tag = 'D' | 'O'<<8 | 'O'<<16 | 'R'<<24 // DOOR
	KindMisc         Tag = 'M' | 'I'<<8 | 'S'<<16 | 'C'<<24 // MISC
	KindWeapon       Tag = 'W' | 'E'<<8 | 'A'<<16 | 'P'<<24 // WEAP
	KindContainer    Tag = 'C' | 'O'<<8 | 'N'<<16 | 'T'<<24 // CONT
	KindSpell        Tag = 'S' | 'P'<<8 | 'E'<<16 | 'L'<<24 // SPEL
	KindCreature     Tag = 'C' | 'R'<<8 | 'E'<<16 | 'A'<<24 // CREA
	KindBodyPart     Tag = 'B' | 'O'<<8 | 'D'<<16 | 'Y'<<24 // BODY
	KindLight        Tag = 'L' | 'I'<<8 | 'G'<<16 | 'H'<<24 // LIGH
	KindEnchantment  Tag = 'E' | 'N'<<8 | 'C'<<16 | 'H'<<24 // ENCH
	KindNPC          Tag = 'N' | 'P'<<8 | 'C'<<16 | '_'<<24 // NPC_
	KindArmor        Tag = 'A' | 'R'<<8 | 'M'<<16 | 'O'<<24 // ARMO
	KindClothing     Tag = 'C' | 'L'<<8 | 'O'<<16 | 'T'<<24 // CLOT
	KindRepairItem   Tag = 'R' | 'E'<<8 | 'P'<<16 | 'A'<<24 // REPA
	KindActivator    Tag = 'A' | 'C'<<8 | 'T'<<16 | 'I'<<24 // ACTI
	KindApparatus    Tag = 'A' | 'P'<<8 | 'P'<<16 | 'A'<<24 // APPA
	KindLockpick     Tag = 'L' | 'O'<<8 | 'C'<<16 | 'K'<<24 // LOCK
	KindProbe        Tag = 'P' | 'R'<<8 | 'O'<<16 | 'B'<<24 // PROB
	KindIngredient   Tag = 'I' | 'N'<<8 | 'G'<<16 | 'R'<<24 // INGR
	KindBook         Tag = 'B' | 'O'<<8 | 'O'<<16 | 'K'<<24 // BOOK
	KindPotion       Tag = 'A' | 'L'<<8 | 'C'<<16 | 'H'<<24 // ALCH
	KindItemList     Tag = 'L' | 'E'<<8 | 'V'<<16 | 'I'<<24 // LEVI
	KindCreatureList Tag = 'L' | 'E'<<8 | 'V'<<16 | 'C'<<24 // LEVC
	KindCell         Tag = 'C' | 'E'<<8 | 'L'<<16 | 'L'<<24 // CELL
	KindLand         Tag = 'L' | 'A'<<8 | 'N'<<16 | 'D'<<24 // LAND
	KindPathGrid     Tag = 'P' | 'G'<<8 | 'R'<<16 | 'D'<<24 // PGRD
	KindSoundGen     Tag = 'S' | 'N'<<8 | 'D'<<16 | 'G'<<24 // SNDG
	KindDialogue     Tag = 'D' | 'I'<<8 | 'A'<<16 | 'L'<<24 // DIAL
	KindInfo         Tag = 'I' | 'N'<<8 | 'F'<<16 | 'O'<<24 // INFO
	KindStartScript  Tag = 'S' | 'S'<<8 | 'C'<<16 | 'R'<<24 // SSCR
)

// Sub-record tags
const (
	tagNAME Tag = 'N' | 'A'<<8 | 'M'<<16 | 'E'<<24
	tagDELE Tag = 'D' | 'E'<<8 | 'L'<<16 | 'E'<<24
	tagMODL Tag = 'M' | 'O'<<8 | 'D'<<16 | 'L'<<24
	tagFNAM Tag = 'F' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagSCRI Tag = 'S' | 'C'<<8 | 'R'<<16 | 'I'<<24
	tagITEX Tag = 'I' | 'T'<<8 | 'E'<<16 | 'X'<<24
	tagENAM Tag = 'E' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagDESC Tag = 'D' | 'E'<<8 | 'S'<<16 | 'C'<<24
	tagHEDR Tag = 'H' | 'E'<<8 | 'D'<<16 | 'R'<<24
	tagMAST Tag = 'M' | 'A'<<8 | 'S'<<16 | 'T'<<24
	tagDATA Tag = 'D' | 'A'<<8 | 'T'<<16 | 'A'<<24
	tagSTRV Tag = 'S' | 'T'<<8 | 'R'<<16 | 'V'<<24
	tagINTV Tag = 'I' | 'N'<<8 | 'T'<<16 | 'V'<<24
	tagFLTV Tag = 'F' | 'L'<<8 | 'T'<<16 | 'V'<<24
	tagCLDT Tag = 'C' | 'L'<<8 | 'D'<<16 | 'T'<<24
	tagRNAM Tag = 'R' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagFADT Tag = 'F' | 'A'<<8 | 'D'<<16 | 'T'<<24
	tagANAM Tag = 'A' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagRADT Tag = 'R' | 'A'<<8 | 'D'<<16 | 'T'<<24
	tagNPCS Tag = 'N' | 'P'<<8 | 'C'<<16 | 'S'<<24
	tagINDX Tag = 'I' | 'N'<<8 | 'D'<<16 | 'X'<<24
	tagSKDT Tag = 'S' | 'K'<<8 | 'D'<<16 | 'T'<<24
	tagMEDT Tag = 'M' | 'E'<<8 | 'D'<<16 | 'T'<<24
	tagPTEX Tag = 'P' | 'T'<<8 | 'E'<<16 | 'X'<<24
	tagCVFX Tag = 'C' | 'V'<<8 | 'F'<<16 | 'X'<<24
	tagBVFX Tag = 'B' | 'V'<<8 | 'F'<<16 | 'X'<<24
	tagHVFX Tag = 'H' | 'V'<<8 | 'F'<<16 | 'X'<<24
	tagAVFX Tag = 'A' | 'V'<<8 | 'F'<<16 | 'X'<<24
	tagCSND Tag = 'C' | 'S'<<8 | 'N'<<16 | 'D'<<24
	tagBSND Tag = 'B' | 'S'<<8 | 'N'<<16 | 'D'<<24
	tagHSND Tag = 'H' | 'S'<<8 | 'N'<<16 | 'D'<<24
	tagASND Tag = 'A' | 'S'<<8 | 'N'<<16 | 'D'<<24
	tagSCHD Tag = 'S' | 'C'<<8 | 'H'<<16 | 'D'<<24
	tagSCVR Tag = 'S' | 'C'<<8 | 'V'<<16 | 'R'<<24
	tagSCDT Tag = 'S' | 'C'<<8 | 'D'<<16 | 'T'<<24
	tagSCTX Tag = 'S' | 'C'<<8 | 'T'<<16 | 'X'<<24
	tagWEAT Tag = 'W' | 'E'<<8 | 'A'<<16 | 'T'<<24
	tagBNAM Tag = 'B' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagCNAM Tag = 'C' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagSNAM Tag = 'S' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagTNAM Tag = 'T' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagMCDT Tag = 'M' | 'C'<<8 | 'D'<<16 | 'T'<<24
	tagWPDT Tag = 'W' | 'P'<<8 | 'D'<<16 | 'T'<<24
	tagCNDT Tag = 'C' | 'N'<<8 | 'D'<<16 | 'T'<<24
	tagFLAG Tag = 'F' | 'L'<<8 | 'A'<<16 | 'G'<<24
	tagNPCO Tag = 'N' | 'P'<<8 | 'C'<<16 | 'O'<<24
	tagSPDT Tag = 'S' | 'P'<<8 | 'D'<<16 | 'T'<<24
	tagNPDT Tag = 'N' | 'P'<<8 | 'D'<<16 | 'T'<<24
	tagXSCL Tag = 'X' | 'S'<<8 | 'C'<<16 | 'L'<<24
	tagAIDT Tag = 'A' | 'I'<<8 | 'D'<<16 | 'T'<<24
	tagAIW  Tag = 'A' | 'I'<<8 | '_'<<16 | 'W'<<24
	tagAIT  Tag = 'A' | 'I'<<8 | '_'<<16 | 'T'<<24
	tagAIF  Tag = 'A' | 'I'<<8 | '_'<<16 | 'F'<<24
	tagAIE  Tag = 'A' | 'I'<<8 | '_'<<16 | 'E'<<24
	tagAIA  Tag = 'A' | 'I'<<8 | '_'<<16 | 'A'<<24
	tagDODT Tag = 'D' | 'O'<<8 | 'D'<<16 | 'T'<<24
	tagDNAM Tag = 'D' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagBYDT Tag = 'B' | 'Y'<<8 | 'D'<<16 | 'T'<<24
	tagLHDT Tag = 'L' | 'H'<<8 | 'D'<<16 | 'T'<<24
	tagENDT Tag = 'E' | 'N'<<8 | 'D'<<16 | 'T'<<24
	tagKNAM Tag = 'K' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagAODT Tag = 'A' | 'O'<<8 | 'D'<<16 | 'T'<<24
	tagCTDT Tag = 'C' | 'T'<<8 | 'D'<<16 | 'T'<<24
	tagRIDT Tag = 'R' | 'I'<<8 | 'D'<<16 | 'T'<<24
	tagAADT Tag = 'A' | 'A'<<8 | 'D'<<16 | 'T'<<24
	tagLKDT Tag = 'L' | 'K'<<8 | 'D'<<16 | 'T'<<24
	tagPBDT Tag = 'P' | 'B'<<8 | 'D'<<16 | 'T'<<24
	tagIRDT Tag = 'I' | 'R'<<8 | 'D'<<16 | 'T'<<24
	tagBKDT Tag = 'B' | 'K'<<8 | 'D'<<16 | 'T'<<24
	tagTEXT Tag = 'T' | 'E'<<8 | 'X'<<16 | 'T'<<24
	tagALDT Tag = 'A' | 'L'<<8 | 'D'<<16 | 'T'<<24
	tagNNAM Tag = 'N' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagINAM Tag = 'I' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagRGNN Tag = 'R' | 'G'<<8 | 'N'<<16 | 'N'<<24
	tagNAM0 Tag = 'N' | 'A'<<8 | 'M'<<16 | '0'<<24
	tagNAM5 Tag = 'N' | 'A'<<8 | 'M'<<16 | '5'<<24
	tagWHGT Tag = 'W' | 'H'<<8 | 'G'<<16 | 'T'<<24
	tagAMBI Tag = 'A' | 'M'<<8 | 'B'<<16 | 'I'<<24
	tagFRMR Tag = 'F' | 'R'<<8 | 'M'<<16 | 'R'<<24
	tagUNAM Tag = 'U' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagNAM9 Tag = 'N' | 'A'<<8 | 'M'<<16 | '9'<<24
	tagXSOL Tag = 'X' | 'S'<<8 | 'O'<<16 | 'L'<<24
	tagXCHG Tag = 'X' | 'C'<<8 | 'H'<<16 | 'G'<<24
	tagMVRF Tag = 'M' | 'V'<<8 | 'R'<<16 | 'F'<<24
	tagVNML Tag = 'V' | 'N'<<8 | 'M'<<16 | 'L'<<24
	tagVHGT Tag = 'V' | 'H'<<8 | 'G'<<16 | 'T'<<24
	tagWNAM Tag = 'W' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagVCLR Tag = 'V' | 'C'<<8 | 'L'<<16 | 'R'<<24
	tagVTEX Tag = 'V' | 'T'<<8 | 'E'<<16 | 'X'<<24
	tagPGRP Tag = 'P' | 'G'<<8 | 'R'<<16 | 'P'<<24
	tagPGRC Tag = 'P' | 'G'<<8 | 'R'<<16 | 'C'<<24
	tagPNAM Tag = 'P' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagONAM Tag = 'O' | 'N'<<8 | 'A'<<16 | 'M'<<24
	tagQSTN Tag = 'Q' | 'S'<<8 | 'T'<<16 | 'N'<<24
	tagQSTF Tag = 'Q' | 'S'<<8 | 'T'<<16 | 'F'<<24
	tagQSTR Tag = 'Q' | 'S'<<8 | 'T'<<16 | 'R'<<24
)
