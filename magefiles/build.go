//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Voxlife builds the voxlife CLI binary into bin/voxlife.
func (Build) Voxlife() error {
	fmt.Println("Build voxlife...")
	_, err := executeCmd("go", withArgs("build", "-o", "bin/voxlife", "./cmd/voxlife"), withStream())
	return err
}
