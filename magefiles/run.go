//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Menu starts the game in the terminal with sound.
func (Run) Menu() error {
	_, err := executeCmd("go", withArgs("run", "./cmd/cyberpath", "--sound"), withStream())
	return err
}

// Serve starts the SSH server on the default port.
func (Run) Serve() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd(binary, withArgs("serve", "--log-level", "info"), withStream())
	return err
}
