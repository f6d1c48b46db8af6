package bvh_test

import (
	"math/rand"
	"testing"

	"github.com/vkor/go-whitted-raytracer/pkg/bvh"
)

func TestVolumesAtDepth(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	tree := bvh.Build(randomSpheres(random, 8), bvh.VolumeBox)

	tests := []struct {
		depth int
		count int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 8},
	}
	for _, tt := range tests {
		volumes := tree.VolumesAtDepth(tt.depth)
		if len(volumes) != tt.count {
			t.Errorf("depth %d: got %d volumes, expected %d", tt.depth, len(volumes), tt.count)
		}
		for _, v := range volumes {
			if !v.Box.IsValid() {
				t.Fatalf("invalid box at depth %d", tt.depth)
			}
		}
	}

	// Below the leaves the listing keeps reporting the leaves
	deep := tree.VolumesAtDepth(10)
	if len(deep) != 8 {
		t.Errorf("depth 10: got %d volumes, expected the 8 leaves", len(deep))
	}
	for _, v := range deep {
		if !v.Leaf {
			t.Error("below the tree only leaves should be reported")
		}
	}

	if got := tree.VolumesAtDepth(-1); got != nil {
		t.Errorf("negative depth must yield nil, got %v", got)
	}
}
