// Package loaders turns on-disk 3D model files into the vertex, normal and
// face index arrays consumed by geometry.NewMesh.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/log"
)

// MeshData contains the raw data loaded from a model file
type MeshData struct {
	Vertices      []core.Vec3
	Normals       []core.Vec3
	VertexIndices []int // 3 per face
	NormalIndices []int // 3 per face, -1 when the face carries no normal
}

// LoadOBJ loads a wavefront OBJ file. Faces with more than three vertices are
// fan-triangulated; texture coordinates and material libraries are ignored.
func LoadOBJ(filename string) (*MeshData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data := &MeshData{}
	logger := log.New("obj")

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", lineNo, err)
			}
			data.Vertices = append(data.Vertices, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", lineNo, err)
			}
			data.Normals = append(data.Normals, n)
		case "f":
			if err := data.appendFace(fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: face: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ file: %w", err)
	}

	if len(data.VertexIndices) == 0 {
		return nil, fmt.Errorf("OBJ file %s contains no faces", filename)
	}

	logger.Infof("loaded %s: %d vertices, %d normals, %d faces",
		filename, len(data.Vertices), len(data.Normals), len(data.VertexIndices)/3)

	return data, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var coords [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, err
		}
		coords[i] = v
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// appendFace parses "v", "v/vt", "v//vn" or "v/vt/vn" references and
// fan-triangulates polygons.
func (d *MeshData) appendFace(refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("face needs at least 3 vertices, got %d", len(refs))
	}

	vIdx := make([]int, len(refs))
	nIdx := make([]int, len(refs))
	for i, ref := range refs {
		parts := strings.Split(ref, "/")

		v, err := d.resolveIndex(parts[0], len(d.Vertices))
		if err != nil {
			return fmt.Errorf("vertex index %q: %w", parts[0], err)
		}
		vIdx[i] = v

		nIdx[i] = -1
		if len(parts) == 3 && parts[2] != "" {
			n, err := d.resolveIndex(parts[2], len(d.Normals))
			if err != nil {
				return fmt.Errorf("normal index %q: %w", parts[2], err)
			}
			nIdx[i] = n
		}
	}

	for i := 1; i+1 < len(refs); i++ {
		d.VertexIndices = append(d.VertexIndices, vIdx[0], vIdx[i], vIdx[i+1])
		d.NormalIndices = append(d.NormalIndices, nIdx[0], nIdx[i], nIdx[i+1])
	}
	return nil
}

// resolveIndex converts a 1-based (or negative relative) OBJ index into a
// validated 0-based index.
func (d *MeshData) resolveIndex(field string, count int) (int, error) {
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx += count + 1
	}
	if idx < 1 || idx > count {
		return 0, fmt.Errorf("index %d out of range [1, %d]", idx, count)
	}
	return idx - 1, nil
}
