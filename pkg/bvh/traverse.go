package bvh

import (
	"github.com/vkor/go-whitted-raytracer/pkg/core"
)

// Hit returns the globally nearest primitive intersection along the ray,
// or false when nothing is hit. Subtrees are pruned when the ray misses
// their bounding volume or enters it beyond the best hit found so far.
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if b.Root == nil {
		return nil, false
	}
	return b.hitNode(b.Root, ray, tMin, tMax)
}

// volumeEntry tests the ray against the node's active bounding volume and
// returns the parametric entry distance.
func (b *BVH) volumeEntry(node *Node, ray core.Ray, tMin, tMax float64) (float64, bool) {
	if b.Kind == VolumeSphere {
		return node.Sphere.HitDistance(ray, tMin, tMax)
	}
	return node.Box.HitDistance(ray, tMin, tMax)
}

func (b *BVH) hitNode(node *Node, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if _, ok := b.volumeEntry(node, ray, tMin, tMax); !ok {
		return nil, false
	}

	if node.IsLeaf() {
		return node.Primitive.Hit(ray, tMin, tMax)
	}

	// Visit the child entered nearer first; ties keep left-before-right.
	near, far := node.Left, node.Right
	nearEntry, nearOK := b.volumeEntry(near, ray, tMin, tMax)
	farEntry, farOK := b.volumeEntry(far, ray, tMin, tMax)
	if !nearOK || (farOK && farEntry < nearEntry) {
		near, far = far, near
		nearEntry, farEntry = farEntry, nearEntry
		nearOK, farOK = farOK, nearOK
	}

	var best *core.HitRecord
	closest := tMax

	if nearOK {
		if hit, ok := b.hitNode(near, ray, tMin, closest); ok {
			best = hit
			closest = hit.T
		}
	}
	// Skip the far child when its volume is entered beyond the best hit;
	// any hit inside it would be farther still.
	if farOK && farEntry <= closest {
		if hit, ok := b.hitNode(far, ray, tMin, closest); ok {
			best = hit
			closest = hit.T
		}
	}

	return best, best != nil
}

// BruteForceHit linearly scans primitives for the nearest hit. It is the
// reference the traverser is cross-checked against, and the fallback for
// trivially small scenes.
func BruteForceHit(primitives []core.Primitive, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var best *core.HitRecord
	closest := tMax

	for _, primitive := range primitives {
		if hit, ok := primitive.Hit(ray, tMin, closest); ok {
			best = hit
			closest = hit.T
		}
	}

	return best, best != nil
}
