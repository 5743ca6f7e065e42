package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Envelope is the uniform wrapper every tool outcome is normalized into.
// Exactly one of Data or Error is populated, gated by Success: a successful
// invocation always carries Data, a failed one always carries Error.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SuccessResult wraps data in a success envelope and marshals it into an MCP
// text result.
func SuccessResult(data any) *mcp.CallToolResult {
	env := Envelope{Success: true, Data: data}
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return FailureResult(fmt.Sprintf("error marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(out))
}

// FailureResult wraps msg in a failure envelope. The result is flagged as an
// error at the MCP level but is still a tool result, not a protocol error:
// the invocation itself completed, its logical outcome is a failure.
func FailureResult(msg string) *mcp.CallToolResult {
	env := Envelope{Success: false, Error: msg}
	// An envelope with only scalar fields cannot fail to marshal.
	out, _ := json.MarshalIndent(env, "", "  ")
	res := mcp.NewToolResultText(string(out))
	res.IsError = true
	return res
}

// Failuref formats a failure message and wraps it via FailureResult.
func Failuref(format string, args ...any) *mcp.CallToolResult {
	return FailureResult(fmt.Sprintf(format, args...))
}
