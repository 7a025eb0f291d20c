// Copyright (c) 2025 suprsokr
// SPDX-License-Identifier: MIT

package esm

// Cell flags
const (
	CellInterior       = 0x01
	CellHasWater       = 0x02
	CellNoSleep        = 0x04
	CellBehaveExterior = 0x80
)

// Cell is an interior cell or an exterior grid square (CELL). Its
// sub-records run in two phases: the cell's own fields, then one run per
// placed object starting at FRMR.
type Cell struct {
	Base
	Flags       uint32
	Grid        GridCoord // Meaningful for exterior cells only
	Region      string
	MapColor    uint32
	WaterHeight float32
	Ambient     *CellAmbient
	RefCount    uint32 // NAM0, temporary reference count
	References  []CellReference
	Moved       []MovedReference

	phase cellPhase
}

type cellPhase uint8

const (
	phaseCell cellPhase = iota
	phaseMoved
	phaseReference
)

// CellAmbient is the lighting of an interior cell (AMBI).
type CellAmbient struct {
	Ambient    uint32
	Sunlight   uint32
	Fog        uint32
	FogDensity float32
}

// CellReference is an object placed in a cell.
type CellReference struct {
	RefNum      uint32
	ID          string // Base object
	Deleted     bool
	Scale       float32
	Transform   Transform
	Destination *TravelDestination // Load door target
	LockLevel   int32
	Key         string
	Trap        string
	Owner       string
	OwnerGlobal string
	Faction     string
	FactionRank int32
	Soul        string
	Charge      float32
	Health      int32 // Remaining uses or health
	Count       int32
	Blocked     uint8
}

// MovedReference records that a reference now lives in another cell (MVRF).
type MovedReference struct {
	RefNum uint32
	Cell   string     // CNAM, interior target
	Grid   *GridCoord // CNDT, exterior target
}

func (*Cell) Kind() Tag { return KindCell }

// Interior reports whether the cell is an interior.
func (r *Cell) Interior() bool {
	return r.Flags&CellInterior != 0
}

func (r *Cell) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagFRMR:
		r.phase = phaseReference
		r.References = append(r.References, CellReference{RefNum: f.u32(), Scale: 1})
		return true
	case tagMVRF:
		r.phase = phaseMoved
		r.Moved = append(r.Moved, MovedReference{RefNum: f.u32()})
		return true
	case tagNAM0:
		r.RefCount = f.u32()
		return true
	}
	switch r.phase {
	case phaseMoved:
		if r.decodeMoved(f) {
			return true
		}
		// A moved reference is followed by the reference itself.
		if len(r.References) == 0 {
			return r.decodeCell(f)
		}
		return r.decodeReference(f)
	case phaseReference:
		return r.decodeReference(f)
	default:
		return r.decodeCell(f)
	}
}

func (r *Cell) decodeCell(f *fieldReader) bool {
	switch f.tag {
	case tagDATA:
		r.Flags = f.u32()
		r.Grid = GridCoord{X: f.i32(), Y: f.i32()}
	case tagRGNN:
		r.Region = f.str()
	case tagNAM5:
		r.MapColor = f.u32()
	case tagWHGT:
		r.WaterHeight = f.f32()
	case tagINTV:
		r.WaterHeight = float32(f.i32())
	case tagAMBI:
		r.Ambient = &CellAmbient{
			Ambient:    f.u32(),
			Sunlight:   f.u32(),
			Fog:        f.u32(),
			FogDensity: f.f32(),
		}
	default:
		return false
	}
	return true
}

func (r *Cell) decodeMoved(f *fieldReader) bool {
	m := &r.Moved[len(r.Moved)-1]
	switch f.tag {
	case tagCNAM:
		m.Cell = f.str()
	case tagCNDT:
		m.Grid = &GridCoord{X: f.i32(), Y: f.i32()}
	default:
		return false
	}
	return true
}

func (r *Cell) decodeReference(f *fieldReader) bool {
	ref := &r.References[len(r.References)-1]
	switch f.tag {
	case tagNAME:
		ref.ID = f.str()
	case tagDELE:
		f.skipRest()
		ref.Deleted = true
	case tagXSCL:
		ref.Scale = f.f32()
	case tagDATA:
		ref.Transform = readTransform(f)
	case tagDODT:
		ref.Destination = &TravelDestination{Transform: readTransform(f)}
	case tagDNAM:
		if ref.Destination == nil {
			return false
		}
		ref.Destination.Cell = f.str()
	case tagFLTV:
		ref.LockLevel = f.i32()
	case tagKNAM:
		ref.Key = f.str()
	case tagTNAM:
		ref.Trap = f.str()
	case tagUNAM:
		ref.Blocked = f.u8()
	case tagANAM:
		ref.Owner = f.str()
	case tagBNAM:
		ref.OwnerGlobal = f.str()
	case tagCNAM:
		ref.Faction = f.str()
	case tagINDX:
		ref.FactionRank = f.i32()
	case tagXSOL:
		ref.Soul = f.str()
	case tagXCHG:
		ref.Charge = f.f32()
	case tagINTV:
		ref.Health = f.i32()
	case tagNAM9:
		ref.Count = f.i32()
	default:
		return false
	}
	return true
}

// LandSize is the number of vertices along each side of a landscape square.
const LandSize = 65

// Land texture grid side length.
const landTextureSize = 16

// heightScale converts VHGT units to world units.
const heightScale = 8

// Land is the terrain of one exterior grid square (LAND). Land records have
// no ID; they are keyed by Grid.
type Land struct {
	Base
	Grid            GridCoord
	Flags           uint32
	Normals         []byte // VNML, LandSize*LandSize signed xyz triples
	HeightOffset    float32
	HeightDeltas    []int8 // VHGT, LandSize*LandSize
	WorldMapHeights []byte // WNAM, 9x9
	Colors          []byte // VCLR, LandSize*LandSize rgb triples
	Textures        []uint16
}

func (*Land) Kind() Tag { return KindLand }

func (r *Land) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagINTV:
		r.Grid = GridCoord{X: f.i32(), Y: f.i32()}
	case tagDATA:
		r.Flags = f.u32()
	case tagVNML:
		r.Normals = f.rest()
	case tagVHGT:
		r.HeightOffset = f.f32()
		raw := f.bytes(LandSize * LandSize)
		if raw != nil {
			r.HeightDeltas = make([]int8, len(raw))
			for i, b := range raw {
				r.HeightDeltas[i] = int8(b)
			}
		}
		f.skipRest()
	case tagWNAM:
		r.WorldMapHeights = f.rest()
	case tagVCLR:
		r.Colors = f.rest()
	case tagVTEX:
		r.Textures = make([]uint16, landTextureSize*landTextureSize)
		for i := range r.Textures {
			r.Textures[i] = f.u16()
		}
	default:
		return false
	}
	return true
}

// Heights returns the absolute vertex heights in world units, row by row,
// or nil if the record carries no VHGT.
func (r *Land) Heights() []float32 {
	if len(r.HeightDeltas) != LandSize*LandSize {
		return nil
	}
	heights := make([]float32, LandSize*LandSize)
	row := r.HeightOffset
	for y := 0; y < LandSize; y++ {
		row += float32(r.HeightDeltas[y*LandSize])
		heights[y*LandSize] = row * heightScale
		col := row
		for x := 1; x < LandSize; x++ {
			col += float32(r.HeightDeltas[y*LandSize+x])
			heights[y*LandSize+x] = col * heightScale
		}
	}
	return heights
}

// PathGrid is the AI navigation graph of a cell (PGRD).
type PathGrid struct {
	Base
	CellName    string
	Grid        GridCoord
	Granularity uint16
	PointCount  uint16
	Points      []PathPoint
	Connections []uint32 // PGRC, flattened adjacency lists
}

// PathPoint is a node of a path grid.
type PathPoint struct {
	X, Y, Z       int32
	AutoGenerated bool
	Connections   uint8 // Number of entries this point owns in Connections
}

// Size of one PGRP entry.
const pathPointSize = 16

func (*PathGrid) Kind() Tag { return KindPathGrid }

func (r *PathGrid) decodeField(f *fieldReader) bool {
	switch f.tag {
	case tagNAME:
		r.CellName = f.str()
	case tagDATA:
		r.Grid = GridCoord{X: f.i32(), Y: f.i32()}
		r.Granularity = f.u16()
		r.PointCount = f.u16()
	case tagPGRP:
		n := f.size() / pathPointSize
		r.Points = make([]PathPoint, 0, n)
		for i := 0; i < n; i++ {
			p := PathPoint{X: f.i32(), Y: f.i32(), Z: f.i32()}
			p.AutoGenerated = f.u8() != 0
			p.Connections = f.u8()
			f.skip(2)
			r.Points = append(r.Points, p)
		}
	case tagPGRC:
		n := f.size() / 4
		r.Connections = make([]uint32, 0, n)
		for i := 0; i < n; i++ {
			r.Connections = append(r.Connections, f.u32())
		}
	default:
		return false
	}
	return true
}

// Neighbours returns the indices of the points connected to point i.
func (r *PathGrid) Neighbours(i int) []uint32 {
	if i < 0 || i >= len(r.Points) {
		return nil
	}
	start := 0
	for _, p := range r.Points[:i] {
		start += int(p.Connections)
	}
	end := start + int(r.Points[i].Connections)
	if end > len(r.Connections) {
		return nil
	}
	return r.Connections[start:end]
}
