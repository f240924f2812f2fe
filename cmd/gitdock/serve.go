package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	gitdockmcp "github.com/gitdock/gitdock/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run gitdock as a Model Context Protocol (MCP) server over stdio.

This exposes repository operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "gitdock": {
        "command": "gitdock",
        "args": ["serve"]
      }
    }
  }

Read tools operate on any repository the server can reach; write tools are
annotated so agents can gate them behind confirmation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := newRuntimeEnv(cmd)
			if err != nil {
				return err
			}
			server := gitdockmcp.NewServer(buildVersion(), env.svc, env.oc.Dir, env.oc.Tenant)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
