package main

import (
	"fmt"
	"os"

	"github.com/yakumd/yakumd"
)

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	markdown, err := deps.Pipeline.RunFromURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yakumd.ErrorMessage(err))
		return err
	}

	out := c.Output
	if out == "" {
		out = yakumd.DeriveFilename(c.URL)
	}

	if err := os.WriteFile(out, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("writing %q: %w", out, err)
	}

	fmt.Fprintf(deps.Stdout, "wrote %s\n", out)
	return nil
}
