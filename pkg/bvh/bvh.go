// Package bvh builds and traverses bounding volume hierarchies over scene
// primitives. Trees are immutable after construction and safe for
// concurrent read access during a render pass.
package bvh

import (
	"sort"

	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// VolumeKind selects the bounding volume used for traversal tests. The
// kind is fixed for one build and affects only the volume test cost, not
// the partitioning.
type VolumeKind int

const (
	// VolumeBox bounds nodes with axis-aligned boxes (slab test)
	VolumeBox VolumeKind = iota
	// VolumeSphere bounds nodes with spheres (quadratic test)
	VolumeSphere
)

// String returns the volume kind name
func (k VolumeKind) String() string {
	if k == VolumeSphere {
		return "sphere"
	}
	return "box"
}

// Node is a tree node: a leaf holds exactly one primitive, an internal
// node holds two children. Every node carries both volume representations;
// the tree's kind decides which one traversal consults.
type Node struct {
	Box       core.AABB
	Sphere    core.BoundingSphere
	Left      *Node
	Right     *Node
	Primitive core.Primitive // Non-nil for leaves
}

// IsLeaf reports whether the node holds a primitive
func (n *Node) IsLeaf() bool {
	return n.Primitive != nil
}

// BVH is a binary bounding volume hierarchy over a fixed primitive set.
// Rebuild (via Build) whenever the underlying primitives change.
type BVH struct {
	Root *Node
	Kind VolumeKind
}

// Build constructs a BVH over the given primitives by recursive median
// split along the axis of greatest centroid extent. An empty set yields a
// tree with a nil root that misses every ray.
func Build(primitives []core.Primitive, kind VolumeKind) *BVH {
	if len(primitives) == 0 {
		return &BVH{Kind: kind}
	}

	// Copy so sorting does not disturb the caller's slice
	working := make([]core.Primitive, len(primitives))
	copy(working, primitives)

	return &BVH{Root: buildNode(working), Kind: kind}
}

// buildNode recursively partitions primitives into a subtree. Coincident
// centroids still terminate: the median split cuts the index range in half
// regardless of key values.
func buildNode(primitives []core.Primitive) *Node {
	if len(primitives) == 1 {
		box := primitives[0].BoundingBox()
		return &Node{
			Box:       box,
			Sphere:    core.NewBoundingSphereFromAABB(box),
			Primitive: primitives[0],
		}
	}

	centroidBounds := core.NewAABBFromPoints(primitives[0].BoundingBox().Center())
	for _, primitive := range primitives[1:] {
		centroidBounds = centroidBounds.Union(core.NewAABBFromPoints(primitive.BoundingBox().Center()))
	}
	axis := centroidBounds.LongestAxis()

	sort.Slice(primitives, func(i, j int) bool {
		return primitives[i].BoundingBox().Center().Component(axis) <
			primitives[j].BoundingBox().Center().Component(axis)
	})

	mid := len(primitives) / 2
	left := buildNode(primitives[:mid])
	right := buildNode(primitives[mid:])

	return &Node{
		Box:    left.Box.Union(right.Box),
		Sphere: left.Sphere.Union(right.Sphere),
		Left:   left,
		Right:  right,
	}
}
