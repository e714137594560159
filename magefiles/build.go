//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
)

const binary = "bin/cyberpath"

type Build mg.Namespace

// Binary compiles the cyberpath command into bin/.
func (Build) Binary() error {
	mg.Deps(Tidy)
	_, err := executeCmd("go", withArgs("build", "-o", binary, "./cmd/cyberpath"), withStream())
	return err
}

// Static compiles a cgo-free binary for the SSH server host.
func (Build) Static() error {
	_, err := executeCmd("go",
		withArgs("build", "-trimpath", "-ldflags", "-s -w", "-o", binary, "./cmd/cyberpath"),
		withEnv("CGO_ENABLED=0"),
		withStream())
	return err
}

// Tidy runs go mod tidy.
func Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}

// Clean removes build output.
func Clean() error {
	return os.RemoveAll("bin")
}
