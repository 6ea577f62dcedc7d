package kernel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScript(t *testing.T) {
	m := NewModel()
	m.SetNumber("Mesh.Algorithm", FrontalDelaunay2D)
	m.SetNumber("General.Verbosity", Silent)

	p1 := m.AddPoint(0, 0, 0, 0.5)
	p2 := m.AddPoint(1, 0, 0, 0)
	p3 := m.AddPoint(1, 1, 0, 0)
	assert.Equal(t, 1, p1)
	assert.Equal(t, 3, p3)

	l1 := m.AddLine(p1, p2)
	l2 := m.AddLine(p2, p3)
	l3 := m.AddLine(p3, p1)
	loop := m.AddCurveLoop([]int{l1, l2, l3})
	surf := m.AddPlaneSurface([]int{loop})
	m.Embed([]int{p1, p2, p3}, surf)
	m.Recombine(surf)

	script := m.Script()

	assert.Contains(t, script, "Mesh.Algorithm = 6;\n")
	assert.Contains(t, script, "General.Verbosity = 0;\n")
	// A positive size is emitted as the fourth point argument
	assert.Contains(t, script, "Point(1) = {0, 0, 0, 0.5};\n")
	assert.Contains(t, script, "Point(2) = {1, 0, 0};\n")
	assert.Contains(t, script, "Line(3) = {3, 1};\n")
	assert.Contains(t, script, "Line Loop(1) = {1, 2, 3};\n")
	assert.Contains(t, script, "Plane Surface(1) = {1};\n")
	assert.Contains(t, script, "Point{1, 2, 3} In Surface{1};\n")
	assert.Contains(t, script, "Recombine Surface{1};\n")
	assert.NotContains(t, script, "Coherence;")

	// Options precede geometry
	assert.Less(t, strings.Index(script, "Mesh.Algorithm"), strings.Index(script, "Point(1)"))
}

func TestScriptVolume(t *testing.T) {
	m := NewModel()
	for i := 0; i < 4; i++ {
		m.AddPoint(float64(i), 0, 0, 0)
	}
	m.AddLine(1, 2)
	m.AddCurveLoop([]int{1})
	s1 := m.AddPlaneSurface([]int{1})
	s2 := m.AddPlaneSurface([]int{1})
	m.Coherence()
	shell := m.AddSurfaceLoop([]int{s1, s2})
	vol := m.AddVolume([]int{shell})
	assert.Equal(t, 1, vol)

	script := m.Script()

	assert.Contains(t, script, "Surface Loop(1) = {1, 2};\n")
	assert.Contains(t, script, "Volume(1) = {1};\n")
	// Duplicates merge after the surfaces exist, before they are stitched
	assert.Less(t, strings.Index(script, "Plane Surface(2)"), strings.Index(script, "Coherence;"))
	assert.Less(t, strings.Index(script, "Coherence;"), strings.Index(script, "Surface Loop(1)"))
}

func TestSessionOneShot(t *testing.T) {
	s := NewSession()
	s.done = true
	_, err := s.Generate(2)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already finalized")
}

func TestSessionBadDimension(t *testing.T) {
	s := NewSession()
	_, err := s.Generate(4)
	assert.Error(t, err)
}

// TestSessionGenerate drives a real kernel when one is installed
func TestSessionGenerate(t *testing.T) {
	if !Available("") {
		t.Skip("gmsh not found on PATH")
	}

	s := NewSession()
	s.Model.SetNumber("General.Verbosity", Silent)
	p1 := s.Model.AddPoint(0, 0, 0, 0.3)
	p2 := s.Model.AddPoint(1, 0, 0, 0.3)
	p3 := s.Model.AddPoint(1, 1, 0, 0.3)
	p4 := s.Model.AddPoint(0, 1, 0, 0.3)
	l1 := s.Model.AddLine(p1, p2)
	l2 := s.Model.AddLine(p2, p3)
	l3 := s.Model.AddLine(p3, p4)
	l4 := s.Model.AddLine(p4, p1)
	loop := s.Model.AddCurveLoop([]int{l1, l2, l3, l4})
	s.Model.AddPlaneSurface([]int{loop})

	msh, err := s.Generate(2)
	assert.NoError(t, err)
	assert.Greater(t, msh.NumElements, 0)
	assert.Greater(t, msh.NumVertices, 4)

	// The session is spent
	_, err = s.Generate(2)
	assert.Error(t, err)
}
