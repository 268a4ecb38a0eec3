package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tabs lists the open tabs of the managed window.
func (t *Tools) Tabs(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[struct{}]]) (*result, error) {
	tabs, err := t.session.Tabs(ctx)
	if err != nil {
		return errorResult(err)
	}
	if len(tabs) == 0 {
		return textResult("No open tabs"), nil
	}

	var b strings.Builder
	for _, tab := range tabs {
		marker := " "
		if tab.Active {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %d. %s (%s)\n", marker, tab.Index, tab.Title, tab.URL)
	}
	return textResult("%s", strings.TrimRight(b.String(), "\n")), nil
}

// SwitchTabArgs addresses a tab by its 1-based ordinal.
type SwitchTabArgs struct {
	Index int `json:"index" jsonschema:"1-based tab ordinal as reported by browser_tabs"`
}

// SwitchTab makes the addressed tab current.
func (t *Tools) SwitchTab(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[SwitchTabArgs]]) (*result, error) {
	index := req.Params.Arguments.Index
	if err := t.session.SwitchTab(ctx, index); err != nil {
		return errorResult(err)
	}
	return textResult("Switched to tab %d", index), nil
}

// OpenTabArgs optionally targets the new tab at a URL.
type OpenTabArgs struct {
	URL string `json:"url,omitempty" jsonschema:"URL to open the new tab at; empty opens a blank tab"`
}

// OpenTab opens a new tab in the managed window.
func (t *Tools) OpenTab(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[OpenTabArgs]]) (*result, error) {
	state, err := t.session.OpenTab(ctx, req.Params.Arguments.URL)
	if err != nil {
		return errorResult(err)
	}
	return textResult("%s", pageStateText("Opened tab", state)), nil
}

// CloseTabArgs addresses a tab by its 1-based ordinal.
type CloseTabArgs struct {
	Index int `json:"index" jsonschema:"1-based tab ordinal as reported by browser_tabs"`
}

// CloseTab closes the addressed tab.
func (t *Tools) CloseTab(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[CloseTabArgs]]) (*result, error) {
	index := req.Params.Arguments.Index
	if err := t.session.CloseTab(ctx, index); err != nil {
		return errorResult(err)
	}
	return textResult("Closed tab %d", index), nil
}
