package main

import (
	"fmt"
	"os"

	"github.com/yakumd/yakumd"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", c.Path, err)
	}

	markdown, err := deps.Pipeline.RunFromText(deps.Ctx, string(data))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yakumd.ErrorMessage(err))
		return err
	}

	if c.Output == "" {
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}

	if err := os.WriteFile(c.Output, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("writing %q: %w", c.Output, err)
	}

	fmt.Fprintf(deps.Stdout, "wrote %s\n", c.Output)
	return nil
}
