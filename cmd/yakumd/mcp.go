package main

// Run executes the mcp command, serving tools over stdio until the
// client disconnects.
func (c *MCPCmd) Run(deps *Dependencies) error {
	return deps.Server.Run(deps.Ctx)
}
