package browser

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	core "github.com/sable-dev/sable/pkg/browser"
)

// ClickArgs identifies a click target one of four ways: visible text, a CSS
// selector, a keyboard key, or explicit coordinates.
type ClickArgs struct {
	Text     string `json:"text,omitempty" jsonschema:"Visible text of the element to click; the shortest visible match wins"`
	Selector string `json:"selector,omitempty" jsonschema:"CSS selector; clicked directly when text is empty, otherwise scopes the text search"`
	Key      string `json:"key,omitempty" jsonschema:"Keyboard key to press on the focused element instead of clicking, e.g. Enter or Escape"`
	X        *int   `json:"x,omitempty" jsonschema:"Viewport x coordinate to click at; requires y"`
	Y        *int   `json:"y,omitempty" jsonschema:"Viewport y coordinate to click at; requires x"`
	WaitFor  string `json:"wait_for,omitempty" jsonschema:"CSS selector to wait for after the click"`
}

// Click resolves and clicks one element. A target that cannot be found is a
// normal outcome reported in the tool text.
func (t *Tools) Click(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[ClickArgs]]) (*result, error) {
	args := req.Params.Arguments
	res, err := t.session.Click(ctx, core.ClickOptions{
		Text:         args.Text,
		Selector:     args.Selector,
		Key:          args.Key,
		X:            args.X,
		Y:            args.Y,
		WaitSelector: args.WaitFor,
	})
	if err != nil {
		return errorResult(err)
	}

	text := res.Description
	if res.SelectorFound != nil {
		if *res.SelectorFound {
			text += "; wait selector appeared"
		} else {
			text += "; wait selector did not appear before the timeout"
		}
	}
	return textResult("%s", text), nil
}
