package browser

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Open starts the browser session and positions the managed window.
func (t *Tools) Open(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[struct{}]]) (*result, error) {
	if err := t.session.Open(ctx); err != nil {
		return errorResult(err)
	}
	t.log.Infof("session opened")
	return textResult("Browser session opened"), nil
}

// Close ends the browser session and closes the managed window.
func (t *Tools) Close(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[struct{}]]) (*result, error) {
	if err := t.session.Close(ctx); err != nil {
		return errorResult(err)
	}
	t.log.Infof("session closed")
	return textResult("Browser session closed"), nil
}
