package browser

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	core "github.com/sable-dev/sable/pkg/browser"
)

// TypeArgs configures a text write into the page.
type TypeArgs struct {
	Text     string `json:"text" jsonschema:"The text to type"`
	Selector string `json:"selector,omitempty" jsonschema:"CSS selector of the input; defaults to the focused element, then the first visible input"`
	Append   bool   `json:"append,omitempty" jsonschema:"Append to the existing value instead of replacing it"`
	Submit   bool   `json:"submit,omitempty" jsonschema:"Press Enter and submit the owning form after typing"`
}

// Type writes text into an input field.
func (t *Tools) Type(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[TypeArgs]]) (*result, error) {
	args := req.Params.Arguments
	desc, err := t.session.Type(ctx, core.TypeOptions{
		Text:     args.Text,
		Selector: args.Selector,
		Append:   args.Append,
		Submit:   args.Submit,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult("%s", desc), nil
}
