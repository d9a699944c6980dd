package main

import (
	"fmt"

	"github.com/yakumd/yakumd"
)

// Run executes the filename command.
func (c *FilenameCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, yakumd.DeriveFilename(c.URL))
	return nil
}
