package kernel

import (
	"fmt"
	"strings"
)

// Model accumulates geometry entities and option assignments and
// serializes them to the kernel's .geo scripting format. Tags are
// 1-based and assigned in creation order, mirroring the kernel's own
// automatic tagging.
type Model struct {
	options       []option
	points        []point
	lines         [][2]int
	curveLoops    [][]int
	planeSurfaces [][]int
	surfaceLoops  [][]int
	volumes       [][]int
	embeds        []embed
	recombines    []int
	coherence     bool
}

type point struct {
	X, Y, Z, Size float64
}

type embed struct {
	PointTags  []int
	SurfaceTag int
}

func NewModel() *Model {
	return &Model{}
}

// SetNumber records a numeric kernel option, e.g. "Mesh.Algorithm".
func (m *Model) SetNumber(name string, value float64) {
	m.options = append(m.options, option{Name: name, Value: value})
}

// AddPoint creates a point with an optional target mesh size (0 = none)
// and returns its tag.
func (m *Model) AddPoint(x, y, z, size float64) int {
	m.points = append(m.points, point{x, y, z, size})
	return len(m.points)
}

// AddLine creates a straight line between two point tags.
func (m *Model) AddLine(startTag, endTag int) int {
	m.lines = append(m.lines, [2]int{startTag, endTag})
	return len(m.lines)
}

// AddCurveLoop creates a closed loop from line tags.
func (m *Model) AddCurveLoop(curveTags []int) int {
	loop := make([]int, len(curveTags))
	copy(loop, curveTags)
	m.curveLoops = append(m.curveLoops, loop)
	return len(m.curveLoops)
}

// AddPlaneSurface creates a plane surface bounded by curve loops. The
// first loop is the outer boundary, the rest are holes.
func (m *Model) AddPlaneSurface(loopTags []int) int {
	loops := make([]int, len(loopTags))
	copy(loops, loopTags)
	m.planeSurfaces = append(m.planeSurfaces, loops)
	return len(m.planeSurfaces)
}

// AddSurfaceLoop creates a closed shell from surface tags.
func (m *Model) AddSurfaceLoop(surfaceTags []int) int {
	loop := make([]int, len(surfaceTags))
	copy(loop, surfaceTags)
	m.surfaceLoops = append(m.surfaceLoops, loop)
	return len(m.surfaceLoops)
}

// AddVolume creates a volume bounded by surface loops.
func (m *Model) AddVolume(shellTags []int) int {
	shells := make([]int, len(shellTags))
	copy(shells, shellTags)
	m.volumes = append(m.volumes, shells)
	return len(m.volumes)
}

// Embed forces the given point tags to appear as mesh nodes of a surface.
func (m *Model) Embed(pointTags []int, surfaceTag int) {
	tags := make([]int, len(pointTags))
	copy(tags, pointTags)
	m.embeds = append(m.embeds, embed{PointTags: tags, SurfaceTag: surfaceTag})
}

// Recombine requests recombination of a surface's triangles into quads.
func (m *Model) Recombine(surfaceTag int) {
	m.recombines = append(m.recombines, surfaceTag)
}

// Coherence requests removal of duplicate entities before meshing
// (the remove-all-duplicates operation of the scripting API).
func (m *Model) Coherence() {
	m.coherence = true
}

// Script renders the model as a .geo file.
func (m *Model) Script() string {
	var sb strings.Builder

	for _, opt := range m.options {
		fmt.Fprintf(&sb, "%s = %g;\n", opt.Name, opt.Value)
	}
	for i, p := range m.points {
		if p.Size > 0 {
			fmt.Fprintf(&sb, "Point(%d) = {%.16g, %.16g, %.16g, %.16g};\n", i+1, p.X, p.Y, p.Z, p.Size)
		} else {
			fmt.Fprintf(&sb, "Point(%d) = {%.16g, %.16g, %.16g};\n", i+1, p.X, p.Y, p.Z)
		}
	}
	for i, l := range m.lines {
		fmt.Fprintf(&sb, "Line(%d) = {%d, %d};\n", i+1, l[0], l[1])
	}
	for i, loop := range m.curveLoops {
		fmt.Fprintf(&sb, "Line Loop(%d) = {%s};\n", i+1, joinTags(loop))
	}
	for i, loops := range m.planeSurfaces {
		fmt.Fprintf(&sb, "Plane Surface(%d) = {%s};\n", i+1, joinTags(loops))
	}
	// After the per-face surfaces so merged duplicates cannot invalidate
	// loop references, before the shell that stitches the surfaces.
	if m.coherence {
		sb.WriteString("Coherence;\n")
	}
	for i, loop := range m.surfaceLoops {
		fmt.Fprintf(&sb, "Surface Loop(%d) = {%s};\n", i+1, joinTags(loop))
	}
	for i, shells := range m.volumes {
		fmt.Fprintf(&sb, "Volume(%d) = {%s};\n", i+1, joinTags(shells))
	}
	for _, e := range m.embeds {
		fmt.Fprintf(&sb, "Point{%s} In Surface{%d};\n", joinTags(e.PointTags), e.SurfaceTag)
	}
	for _, s := range m.recombines {
		fmt.Fprintf(&sb, "Recombine Surface{%d};\n", s)
	}

	return sb.String()
}

func joinTags(tags []int) string {
	strs := make([]string, len(tags))
	for i, t := range tags {
		strs[i] = fmt.Sprintf("%d", t)
	}
	return strings.Join(strs, ", ")
}
