// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

// Dialogue types
const (
	DialogueTopic    = 0
	DialogueVoice    = 1
	DialogueGreeting = 2
	DialoguePersuade = 3
	DialogueJournal  = 4
)

// Dialogue is a dialogue topic, greeting or journal entry (DIAL). The INFO
// records that follow it in the stream are its responses.
type Dialogue struct {
	Base
	Type uint8
}

func (*Dialogue) Kind() Tag { return KindDialogue }

func (r *Dialogue) decodeField(f *fieldReader) bool {
	if f.tag != tagDATA {
		return false
	}
	// Some files store the type as a 4-byte integer.
	r.Type = f.u8()
	f.skipRest()
	return true
}

// Info is one response of a dialogue (INFO). Its ID comes from INAM; Topic
// is the ID of the Dialogue it follows.
type Info struct {
	Base
	Topic       string
	Previous    string
	Next        string
	Type        uint8
	Disposition int32 // Journal index for journal entries
	Rank        int8
	Gender      int8
	PCRank      int8
	Actor       string
	Race        string
	Class       string
	Faction     string
	Cell        string
	PCFaction   string
	Sound       string
	Text        string
	Conditions  []InfoCondition
	Result      string
	QuestName   bool
	QuestDone   bool
	QuestReset  bool
}

// InfoCondition is one SCVR filter with its comparison value.
type InfoCondition struct {
	Function string // Encoded as in the file, e.g. "01X0Name"
	Int      int32
	Float    float32
	IsFloat  bool
}

func (*Info) Kind() Tag { return KindInfo }

func (r *Info) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagINAM:
		r.ID = f.str()
	case tagPNAM:
		r.Previous = f.str()
	case tagNNAM:
		r.Next = f.str()
	case tagDATA:
		r.Type = f.u8()
		f.skip(3)
		r.Disposition = f.i32()
		r.Rank = f.i8()
		r.Gender = f.i8()
		r.PCRank = f.i8()
		f.skip(1)
	case tagONAM:
		r.Actor = f.str()
	case tagRNAM:
		r.Race = f.str()
	case tagCNAM:
		r.Class = f.str()
	case tagFNAM:
		r.Faction = f.str()
	case tagANAM:
		r.Cell = f.str()
	case tagDNAM:
		r.PCFaction = f.str()
	case tagSNAM:
		r.Sound = f.str()
	case tagNAME:
		r.Text = f.str()
	case tagSCVR:
		r.Conditions = append(r.Conditions, InfoCondition{Function: f.str()})
	case tagINTV, tagFLTV:
		if len(r.Conditions) == 0 {
			return false
		}
		c := &r.Conditions[len(r.Conditions)-1]
		if f.tag == tagFLTV {
			c.IsFloat = true
			c.Float = f.f32()
		} else {
			c.Int = f.i32()
		}
	case tagBNAM:
		r.Result = f.str()
	case tagQSTN:
		r.QuestName = f.u8() != 0
	case tagQSTF:
		r.QuestDone = f.u8() != 0
	case tagQSTR:
		r.QuestReset = f.u8() != 0
	default:
		return false
	}
	return true
}
