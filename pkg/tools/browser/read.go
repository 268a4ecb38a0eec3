package browser

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	core "github.com/sable-dev/sable/pkg/browser"
)

// ReadArgs scopes and bounds content extraction.
type ReadArgs struct {
	Selector  string `json:"selector,omitempty" jsonschema:"CSS selector limiting extraction to the first matching element"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"Maximum characters of text to return, default 20000"`
}

// Read extracts the page's readable text.
func (t *Tools) Read(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[ReadArgs]]) (*result, error) {
	args := req.Params.Arguments
	content, err := t.session.Read(ctx, core.ReadOptions{
		Selector:  args.Selector,
		MaxLength: args.MaxLength,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult("%s", renderContent(content)), nil
}

func renderContent(content core.PageContent) string {
	var b strings.Builder
	if content.Title != "" {
		b.WriteString("Title: " + content.Title + "\n")
	}
	if content.Description != "" {
		b.WriteString("Description: " + content.Description + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(content.Text)
	if content.Truncated {
		b.WriteString("\n\n[content truncated]")
	}
	return b.String()
}
