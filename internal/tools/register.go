package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Registration pairs a tool schema with its handler. Tool packages return
// slices of these from their XxxTools constructors; main registers them all.
type Registration struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// RegisterAll adds every registration to the MCP server. Dispatch on names
// that were never registered is handled by the server itself, which answers
// with a JSON-RPC "tool not found" error rather than a tool result.
func RegisterAll(s *server.MCPServer, regs []Registration) {
	for _, reg := range regs {
		s.AddTool(reg.Tool, reg.Handler)
	}
}
