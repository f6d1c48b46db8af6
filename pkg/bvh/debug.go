package bvh

import (
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// DebugVolume is one bounding volume exported for visualization
type DebugVolume struct {
	Box    core.AABB
	Sphere core.BoundingSphere
	Depth  int
	Leaf   bool
}

// VolumesAtDepth returns the bounding volumes of all nodes at the given
// tree depth, for the bounding-volume visualization overlay. Leaves above
// the requested depth are included so shallow subtrees stay visible.
func (b *BVH) VolumesAtDepth(depth int) []DebugVolume {
	if b.Root == nil || depth < 0 {
		return nil
	}

	var volumes []DebugVolume
	var walk func(node *Node, level int)
	walk = func(node *Node, level int) {
		if level == depth || (node.IsLeaf() && level < depth) {
			volumes = append(volumes, DebugVolume{
				Box:    node.Box,
				Sphere: node.Sphere,
				Depth:  level,
				Leaf:   node.IsLeaf(),
			})
			return
		}
		if node.IsLeaf() {
			return
		}
		walk(node.Left, level+1)
		walk(node.Right, level+1)
	}
	walk(b.Root, 0)
	return volumes
}
