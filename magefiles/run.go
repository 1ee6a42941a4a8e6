//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Voxlife runs the converter directly via `go run`, forwarding gamePath and
// the level names (or "all") straight through to cmd/voxlife.
func (Run) Voxlife(gamePath string, levels ...string) error {
	fmt.Println("Run voxlife...")
	args := append([]string{"run", "./cmd/voxlife", gamePath}, levels...)
	_, err := executeCmd("go", withArgs(args...), withStream())
	return err
}
