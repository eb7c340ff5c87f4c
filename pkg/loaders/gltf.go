package loaders

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"

	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/core"
	"github.com/HypoxanthineOvO/HypoxRayMarcher/pkg/log"
)

// LoadGLB loads a binary glTF (.glb) file.
func LoadGLB(filename string) (*MeshData, error) {
	return LoadGLTF(filename)
}

// LoadGLTF loads a glTF or GLB file. All triangle primitives of all meshes in
// the document are merged into a single MeshData; materials and textures are
// ignored.
func LoadGLTF(filename string) (*MeshData, error) {
	doc, err := gltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file: %w", err)
	}

	data := &MeshData{}
	for _, m := range doc.Meshes {
		if err := appendGLTFMesh(doc, m, data); err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
	}

	if len(data.VertexIndices) == 0 {
		return nil, fmt.Errorf("glTF file %s contains no triangles", filename)
	}

	log.New("gltf").Infof("loaded %s: %d vertices, %d normals, %d faces",
		filename, len(data.Vertices), len(data.Normals), len(data.VertexIndices)/3)

	return data, nil
}

func appendGLTFMesh(doc *gltf.Document, m *gltf.Mesh, data *MeshData) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals []core.Vec3
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = readVec3Accessor(doc, normIdx)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		baseVertex := len(data.Vertices)
		baseNormal := len(data.Normals)
		data.Vertices = append(data.Vertices, positions...)
		data.Normals = append(data.Normals, normals...)

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}
		if len(indices)%3 != 0 {
			return fmt.Errorf("index count %d is not a multiple of 3", len(indices))
		}

		for _, idx := range indices {
			if idx < 0 || idx >= len(positions) {
				return fmt.Errorf("index %d out of range [0, %d)", idx, len(positions))
			}
			data.VertexIndices = append(data.VertexIndices, baseVertex+idx)
			if idx < len(normals) {
				data.NormalIndices = append(data.NormalIndices, baseNormal+idx)
			} else {
				data.NormalIndices = append(data.NormalIndices, -1)
			}
		}
	}
	return nil
}

// readVec3Accessor reads VEC3 float data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]core.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}

	buf, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]core.Vec3, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		offset := i * stride
		result[i] = core.NewVec3(
			float64(readFloat32(buf[offset:])),
			float64(readFloat32(buf[offset+4:])),
			float64(readFloat32(buf[offset+8:])),
		)
	}
	return result, nil
}

// readIndices reads scalar index data from a glTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var componentSize int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		componentSize = 1
	case gltf.ComponentUshort:
		componentSize = 2
	case gltf.ComponentUint:
		componentSize = 4
	default:
		return nil, fmt.Errorf("unexpected index component type: %v", accessor.ComponentType)
	}

	buf, stride, err := accessorBytes(doc, accessor, componentSize)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := 0; i < accessor.Count; i++ {
		offset := i * stride
		switch componentSize {
		case 1:
			result[i] = int(buf[offset])
		case 2:
			result[i] = int(uint16(buf[offset]) | uint16(buf[offset+1])<<8)
		case 4:
			result[i] = int(uint32(buf[offset]) |
				uint32(buf[offset+1])<<8 |
				uint32(buf[offset+2])<<16 |
				uint32(buf[offset+3])<<24)
		}
	}
	return result, nil
}

// accessorBytes resolves an accessor to its backing bytes and element stride.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elementSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer %d has no embedded data", bufferView.Buffer)
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elementSize
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	end := start + (accessor.Count-1)*stride + elementSize
	if end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor reads past end of buffer (%d > %d)", end, len(buffer.Data))
	}
	return buffer.Data[start:end], stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
