package geometry

import (
	"fmt"

	"github.com/vkor/go-whitted-raytracer/pkg/bvh"
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// MeshOptions contains optional parameters for mesh creation
type MeshOptions struct {
	Normals     []core.Vec3 // Per-vertex normals; computed when nil
	FlatShading bool        // Use geometric face normals instead of vertex normals
}

// Mesh is an immutable aggregate of triangles built once from parsed
// vertex/face lists. An internal BVH accelerates ray queries against it.
type Mesh struct {
	triangles []core.Primitive
	index     *bvh.BVH
	bbox      core.AABB
	material  *core.Material
}

// NewMesh creates a mesh from vertex positions and triangular face index
// triples. When options carry no normals and flat shading is off, vertex
// normals are precomputed by area-weighted averaging of adjacent face
// normals.
func NewMesh(positions []core.Vec3, faces []int, material *core.Material, options *MeshOptions) (*Mesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must come in triples, got %d", len(faces))
	}
	for _, idx := range faces {
		if idx < 0 || idx >= len(positions) {
			return nil, fmt.Errorf("face index %d out of bounds for %d vertices", idx, len(positions))
		}
	}

	var normals []core.Vec3
	flat := options != nil && options.FlatShading
	if !flat {
		if options != nil && options.Normals != nil {
			if len(options.Normals) != len(positions) {
				return nil, fmt.Errorf("got %d normals for %d vertices", len(options.Normals), len(positions))
			}
			normals = options.Normals
		} else {
			normals = ComputeVertexNormals(positions, faces)
		}
	}

	numTriangles := len(faces) / 3
	triangles := make([]core.Primitive, 0, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		if flat {
			triangles = append(triangles, NewTriangle(positions[i0], positions[i1], positions[i2], material))
		} else {
			triangles = append(triangles, NewSmoothTriangle(
				positions[i0], positions[i1], positions[i2],
				normals[i0], normals[i1], normals[i2],
				material,
			))
		}
	}

	bbox := triangles[0].BoundingBox()
	for _, triangle := range triangles[1:] {
		bbox = bbox.Union(triangle.BoundingBox())
	}

	return &Mesh{
		triangles: triangles,
		index:     bvh.Build(triangles, bvh.VolumeBox),
		bbox:      bbox,
		material:  material,
	}, nil
}

// ComputeVertexNormals averages adjacent face normals per vertex, weighted
// by face area: the unnormalized cross products (whose magnitude is twice
// the face area) are summed and the sum normalized once, so larger faces
// contribute more.
func ComputeVertexNormals(positions []core.Vec3, faces []int) []core.Vec3 {
	accumulated := make([]core.Vec3, len(positions))

	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		edge1 := positions[i1].Subtract(positions[i0])
		edge2 := positions[i2].Subtract(positions[i0])
		faceNormal := edge1.Cross(edge2) // length ∝ face area

		accumulated[i0] = accumulated[i0].Add(faceNormal)
		accumulated[i1] = accumulated[i1].Add(faceNormal)
		accumulated[i2] = accumulated[i2].Add(faceNormal)
	}

	normals := make([]core.Vec3, len(positions))
	for i, sum := range accumulated {
		normals[i] = sum.Normalize()
	}
	return normals
}

// Hit tests the ray against the mesh through its internal BVH
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return m.index.Hit(ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box of the whole mesh
func (m *Mesh) BoundingBox() core.AABB {
	return m.bbox
}

// Triangles returns the mesh's triangles
func (m *Mesh) Triangles() []core.Primitive {
	return m.triangles
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}
