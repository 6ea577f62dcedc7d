package kernel

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/meshtools/gmshkit/mesh"
	"github.com/meshtools/gmshkit/mesh/readers"
)

// DefaultBinary is the kernel executable looked up on PATH when a session
// is created without an explicit binary.
const DefaultBinary = "gmsh"

// Session drives one mesh generation run of the external kernel: it
// serializes the model to a .geo script in a private scratch directory,
// invokes the kernel executable in batch mode, and reads the generated
// mesh back. A session is one-shot; the scratch directory is released on
// every exit path, so a finished session holds no kernel state.
type Session struct {
	Model  *Model
	binary string
	done   bool
}

// NewSession creates a session with an empty model.
func NewSession() *Session {
	return &Session{
		Model:  NewModel(),
		binary: DefaultBinary,
	}
}

// SetBinary overrides the kernel executable (path or name on PATH).
func (s *Session) SetBinary(binary string) {
	if binary != "" {
		s.binary = binary
	}
}

// Available reports whether the kernel executable can be found.
func (s *Session) Available() bool {
	_, err := exec.LookPath(s.binary)
	return err == nil
}

// Available reports whether the kernel executable can be found, the
// default one when binary is empty.
func Available(binary string) bool {
	if binary == "" {
		binary = DefaultBinary
	}
	_, err := exec.LookPath(binary)
	return err == nil
}

// Generate meshes the model at the given dimension (2 or 3) and returns
// the mesh read back from the kernel. Kernel failures surface the
// kernel's stderr; cleanup happens regardless.
func (s *Session) Generate(dim int) (msh *mesh.Mesh, err error) {
	if s.done {
		return nil, fmt.Errorf("kernel session already finalized")
	}
	s.done = true

	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("unsupported mesh dimension %d", dim)
	}

	dir, err := os.MkdirTemp("", "gmshkit")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	geoFile := filepath.Join(dir, "model.geo")
	mshFile := filepath.Join(dir, "model.msh")

	if err = os.WriteFile(geoFile, []byte(s.Model.Script()), 0644); err != nil {
		return nil, err
	}

	// msh2 keeps the read-back path on the simplest ASCII format.
	args := []string{
		geoFile,
		fmt.Sprintf("-%d", dim),
		"-format", "msh2",
		"-o", mshFile,
		"-v", "0",
	}

	cmd := exec.Command(s.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err = cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("gmsh: %v: %s", err, stderr.String())
		}
		return nil, fmt.Errorf("gmsh: %v", err)
	}

	return readers.ReadGmshAuto(mshFile)
}
