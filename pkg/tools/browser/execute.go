package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExecuteArgs carries a JavaScript payload. Function literals are invoked;
// bare expressions run as-is.
type ExecuteArgs struct {
	Script string `json:"script" jsonschema:"JavaScript to execute in the current page"`
}

// Execute runs JavaScript in the current page and returns its result.
func (t *Tools) Execute(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[ExecuteArgs]]) (*result, error) {
	out, err := t.session.Execute(ctx, req.Params.Arguments.Script)
	if err != nil {
		return errorResult(err)
	}
	if out == "" {
		return textResult("Script executed (no return value)"), nil
	}
	return textResult("%s", out), nil
}

// Console reads the JavaScript errors and warnings captured from the page.
func (t *Tools) Console(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[struct{}]]) (*result, error) {
	log, err := t.session.ConsoleMessages(ctx)
	if err != nil {
		return errorResult(err)
	}
	if len(log.Errors) == 0 && len(log.Warnings) == 0 {
		return textResult("No console errors or warnings captured"), nil
	}

	var b strings.Builder
	for _, e := range log.Errors {
		fmt.Fprintf(&b, "[error] %s\n", e)
	}
	for _, w := range log.Warnings {
		fmt.Fprintf(&b, "[warning] %s\n", w)
	}
	return textResult("%s", strings.TrimRight(b.String(), "\n")), nil
}
