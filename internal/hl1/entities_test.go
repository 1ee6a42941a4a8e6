package hl1

import "testing"

func TestKnownClassnamesAreSortedAndComplete(t *testing.T) {
	if len(knownClassnames) != len(classnameTypeByName) {
		t.Fatalf("got %d sorted classnames, want %d (one per dispatch table entry)", len(knownClassnames), len(classnameTypeByName))
	}
	for i := 1; i < len(knownClassnames); i++ {
		if knownClassnames[i-1] >= knownClassnames[i] {
			t.Fatalf("knownClassnames not strictly sorted at %d: %q >= %q", i, knownClassnames[i-1], knownClassnames[i])
		}
	}
	for _, name := range []string{"worldspawn", "light", "info_player_start", "monster_gman"} {
		if _, ok := classnameTypeByName[name]; !ok {
			t.Fatalf("classnameTypeByName missing %q", name)
		}
	}
}

func TestKnownParametersAreSortedAndComplete(t *testing.T) {
	if len(knownParameters) != int(parameterTypeMax) {
		t.Fatalf("got %d sorted parameters, want %d", len(knownParameters), parameterTypeMax)
	}
	for i := 1; i < len(knownParameters); i++ {
		if knownParameters[i-1] >= knownParameters[i] {
			t.Fatalf("knownParameters not strictly sorted at %d: %q >= %q", i, knownParameters[i-1], knownParameters[i])
		}
	}
}
