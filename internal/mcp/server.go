// Package mcp provides a Model Context Protocol server for gitdock.
// It exposes repository operations as MCP tools that any MCP-capable agent
// can call, mapping tool inputs onto operation contexts and typed options.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gitdock/gitdock/internal/ops"
)

// server carries what tool handlers need: the operation service plus the
// defaults that complete an operation context when a call omits them.
type server struct {
	svc        *ops.Service
	defaultDir string
	tenant     string
}

// NewServer creates an MCP server with all gitdock tools registered.
// defaultDir is the repository used when a call does not name one; tenant is
// attached to every operation context unchanged.
func NewServer(version string, svc *ops.Service, defaultDir, tenant string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "gitdock",
		Version: version,
	}, nil)
	s := &server{svc: svc, defaultDir: defaultDir, tenant: tenant}
	registerReadTools(srv, s)
	registerWriteTools(srv, s)
	return srv
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// annotationsFor derives tool annotations from the operation registry, so
// the MCP surface and the registry can never disagree about which tools are
// read-only or destructive.
func annotationsFor(opName string) *mcp.ToolAnnotations {
	desc, ok := ops.Lookup(opName)
	if !ok || desc.ReadOnly {
		return &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		}
	}
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(desc.Destructive),
		OpenWorldHint:   boolPtr(false),
	}
}

// describe returns the registry description for an operation.
func describe(opName string) string {
	desc, _ := ops.Lookup(opName)
	return desc.Description
}
