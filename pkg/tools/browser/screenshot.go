package browser

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Screenshot captures the managed window and returns it as PNG image
// content.
func (t *Tools) Screenshot(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[struct{}]]) (*result, error) {
	data, err := t.session.Screenshot(ctx)
	if err != nil {
		return errorResult(err)
	}
	return &result{
		Content: []mcp.Content{&mcp.ImageContent{Data: data, MIMEType: "image/png"}},
	}, nil
}
