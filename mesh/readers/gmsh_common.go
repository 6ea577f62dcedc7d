package readers

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meshtools/gmshkit/mesh"
)

// ReadGmshAuto automatically detects the Gmsh format version and reads the file
func ReadGmshAuto(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(file)
	var version string

	// Look for $MeshFormat section to determine version
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "$MeshFormat" {
			if scanner.Scan() {
				parts := strings.Fields(scanner.Text())
				if len(parts) > 0 {
					version = parts[0]
					break
				}
			}
		}
	}

	file.Close()

	if strings.HasPrefix(version, "4.") {
		return ReadGmsh41(filename)
	} else if strings.HasPrefix(version, "2.") {
		return ReadGmsh22(filename)
	} else if version == "" {
		return nil, fmt.Errorf("could not find $MeshFormat section")
	} else {
		return nil, fmt.Errorf("unsupported Gmsh format version: %s", version)
	}
}

// readMeshFormat reads the MeshFormat section (common to v2.2 and v4)
func readMeshFormat(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in MeshFormat")
	}

	parts := strings.Fields(scanner.Text())
	if len(parts) < 3 {
		return fmt.Errorf("invalid MeshFormat line")
	}

	msh.FormatVersion = parts[0]
	fileType, _ := strconv.Atoi(parts[1])
	msh.IsBinary = fileType == 1
	msh.DataSize, _ = strconv.Atoi(parts[2])

	return skipSection(scanner, "$EndMeshFormat")
}

// readPhysicalNames reads physical group names (common to v2.2 and v4)
func readPhysicalNames(scanner *bufio.Scanner, msh *mesh.Mesh) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in PhysicalNames")
	}

	numNames, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))

	for i := 0; i < numNames; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("unexpected EOF reading physical names")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) >= 3 {
			tag, _ := strconv.Atoi(parts[1])
			name := strings.Trim(parts[2], "\"")

			// Join remaining parts if name contains spaces
			for j := 3; j < len(parts); j++ {
				name += " " + strings.Trim(parts[j], "\"")
			}

			msh.BoundaryTags[tag] = name
		}
	}

	return skipSection(scanner, "$EndPhysicalNames")
}

// skipSection advances the scanner past the given end marker
func skipSection(scanner *bufio.Scanner, endMarker string) error {
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == endMarker {
			return nil
		}
	}
	return fmt.Errorf("unexpected EOF looking for %s", endMarker)
}
