package bvh

// Stats describes the shape of a built tree
type Stats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
	AvgDepth   float64
}

// ComputeStats walks the tree and collects structural statistics
func (b *BVH) ComputeStats() Stats {
	if b.Root == nil {
		return Stats{}
	}

	stats := Stats{}
	collectStats(b.Root, 0, &stats)
	if stats.LeafNodes > 0 {
		stats.AvgDepth /= float64(stats.LeafNodes)
	}
	return stats
}

func collectStats(node *Node, depth int, stats *Stats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.IsLeaf() {
		stats.LeafNodes++
		stats.AvgDepth += float64(depth)
		return
	}
	collectStats(node.Left, depth+1, stats)
	collectStats(node.Right, depth+1, stats)
}
