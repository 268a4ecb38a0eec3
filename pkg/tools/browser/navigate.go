package browser

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	core "github.com/sable-dev/sable/pkg/browser"
)

// NavigateArgs takes either a URL or a history direction.
type NavigateArgs struct {
	URL       string `json:"url,omitempty" jsonschema:"Absolute http or https URL to navigate to"`
	Direction string `json:"direction,omitempty" jsonschema:"History direction, back or forward, used when url is empty"`
	Steps     int    `json:"steps,omitempty" jsonschema:"Number of history steps, default 1"`
	WaitFor   string `json:"wait_for,omitempty" jsonschema:"CSS selector to wait for after the page loads"`
}

// Navigate drives the current tab to a URL or through history.
func (t *Tools) Navigate(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[NavigateArgs]]) (*result, error) {
	args := req.Params.Arguments
	state, err := t.session.Navigate(ctx, core.NavigateOptions{
		URL:       args.URL,
		Direction: args.Direction,
		Steps:     args.Steps,
		Selector:  args.WaitFor,
	})
	if err != nil {
		return errorResult(err)
	}
	return textResult("%s", pageStateText("Navigated", state)), nil
}

// RefreshArgs configures a reload.
type RefreshArgs struct {
	Hard    bool   `json:"hard,omitempty" jsonschema:"Bypass the cache when reloading"`
	WaitFor string `json:"wait_for,omitempty" jsonschema:"CSS selector to wait for after the reload"`
}

// Refresh reloads the current page.
func (t *Tools) Refresh(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[RefreshArgs]]) (*result, error) {
	args := req.Params.Arguments
	state, err := t.session.Refresh(ctx, args.Hard, args.WaitFor)
	if err != nil {
		return errorResult(err)
	}
	return textResult("%s", pageStateText("Reloaded", state)), nil
}
