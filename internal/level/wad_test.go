package level

import (
	"path/filepath"
	"testing"
)

func TestWadPathsDropsLeadingInstallPath(t *testing.T) {
	got := wadPaths("/games/halflife", `\sierra\half-life\valve\halflife.wad;\sierra\half-life\valve\liquids.wad`)
	want := []string{
		filepath.Join("/games/halflife", "valve", "halflife.wad"),
		filepath.Join("/games/halflife", "valve", "liquids.wad"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWadPathsSkipsEmptySegments(t *testing.T) {
	got := wadPaths("/games/halflife", `\sierra\half-life\valve\halflife.wad;;   ;`)
	if len(got) != 1 {
		t.Fatalf("got %d paths, want 1: %v", len(got), got)
	}
}

func TestWadPathsDropsSegmentsMissingModDir(t *testing.T) {
	got := wadPaths("/games/halflife", "halflife.wad")
	if len(got) != 0 {
		t.Fatalf("got %d paths, want 0 for a bare filename with no mod dir: %v", len(got), got)
	}
}
