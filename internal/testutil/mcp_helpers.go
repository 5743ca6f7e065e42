package testutil

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Flxkzy/Slack-MCP/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewCallToolRequest constructs an mcp.CallToolRequest with the given tool
// name and arguments map. This is the standard way to build requests in tests.
func NewCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// ExtractText extracts the text string from a CallToolResult. It assumes the
// result contains at least one TextContent element and fails the test
// otherwise.
func ExtractText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("result is nil")
	}
	if len(result.Content) == 0 {
		t.Fatal("result has no content elements")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("result content[0] is %T, want mcp.TextContent", result.Content[0])
	}
	return tc.Text
}

// DecodeEnvelope extracts the result text and unmarshals it as a tools
// envelope, failing the test on malformed JSON.
func DecodeEnvelope(t *testing.T, result *mcp.CallToolResult) tools.Envelope {
	t.Helper()
	text := ExtractText(t, result)
	var env tools.Envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		t.Fatalf("result text is not a valid envelope: %v\nText: %s", err, text)
	}
	return env
}

// DataMap asserts the envelope's data is a JSON object and returns it.
func DataMap(t *testing.T, env tools.Envelope) map[string]any {
	t.Helper()
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("envelope data is %T, want JSON object", env.Data)
	}
	return data
}

// DataList asserts the envelope's data is a JSON array and returns it.
func DataList(t *testing.T, env tools.Envelope) []any {
	t.Helper()
	data, ok := env.Data.([]any)
	if !ok {
		t.Fatalf("envelope data is %T, want JSON array", env.Data)
	}
	return data
}

// AssertSuccess decodes the envelope and fails the test unless success is
// true with no error text.
func AssertSuccess(t *testing.T, result *mcp.CallToolResult) tools.Envelope {
	t.Helper()
	env := DecodeEnvelope(t, result)
	if !env.Success {
		t.Fatalf("envelope success = false, error: %s", env.Error)
	}
	if env.Error != "" {
		t.Errorf("successful envelope carries error text %q", env.Error)
	}
	return env
}

// AssertFailure decodes the envelope and fails the test unless success is
// false with error text containing substr.
func AssertFailure(t *testing.T, result *mcp.CallToolResult, substr string) tools.Envelope {
	t.Helper()
	env := DecodeEnvelope(t, result)
	if env.Success {
		t.Fatalf("envelope success = true, want failure containing %q", substr)
	}
	if env.Data != nil {
		t.Errorf("failure envelope carries data: %v", env.Data)
	}
	if !strings.Contains(env.Error, substr) {
		t.Errorf("envelope error = %q, want it to contain %q", env.Error, substr)
	}
	return env
}

// FindHandler returns the handler registered under the given tool name,
// failing the test when it is absent.
func FindHandler(t *testing.T, regs []tools.Registration, name string) server.ToolHandlerFunc {
	t.Helper()
	for _, reg := range regs {
		if reg.Tool.Name == name {
			if reg.Handler == nil {
				t.Fatalf("tool %q has nil handler", name)
			}
			return reg.Handler
		}
	}
	t.Fatalf("tool %q not found in registrations", name)
	return nil
}

// AssertRegistrations checks that regs contains exactly the given tool names.
func AssertRegistrations(t *testing.T, regs []tools.Registration, names []string) {
	t.Helper()
	expected := make(map[string]bool, len(names))
	for _, n := range names {
		expected[n] = false
	}
	for _, reg := range regs {
		if _, ok := expected[reg.Tool.Name]; !ok {
			t.Errorf("unexpected tool name %q", reg.Tool.Name)
			continue
		}
		expected[reg.Tool.Name] = true
	}
	for name, found := range expected {
		if !found {
			t.Errorf("expected tool %q not found in registrations", name)
		}
	}
}

// Call invokes handler with a request built from name and args, failing the
// test if the handler itself returns a Go error (handlers must absorb every
// failure into an envelope).
func Call(t *testing.T, handler server.ToolHandlerFunc, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := handler(context.Background(), NewCallToolRequest(name, args))
	if err != nil {
		t.Fatalf("handler returned unexpected error: %v", err)
	}
	return result
}
