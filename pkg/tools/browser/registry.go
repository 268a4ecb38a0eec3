package browser

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	core "github.com/sable-dev/sable/pkg/browser"
	"github.com/sable-dev/sable/pkg/logging"
)

// result shortens the only result shape these tools produce.
type result = mcp.CallToolResultFor[struct{}]

// Tools adapts a browser session to the MCP tool surface. All tools share
// the one session; the session itself enforces the single-session lifecycle.
type Tools struct {
	session *core.Session
	log     *logging.Logger
}

// New creates the tool set over a session.
func New(session *core.Session, log *logging.Logger) *Tools {
	return &Tools{session: session, log: log}
}

// Register adds every browser tool to the server.
func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{Name: "browser_open", Description: "Open a managed browser window and start the automation session"}, t.Open)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_close", Description: "Close the managed browser window and end the session"}, t.Close)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_navigate", Description: "Navigate the current tab to a URL, or move back/forward through history"}, t.Navigate)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_refresh", Description: "Reload the current page, optionally bypassing the cache"}, t.Refresh)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_search", Description: "Run a web search using the browser's configured search engine"}, t.Search)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_click", Description: "Click an element found by visible text, CSS selector, or coordinates, or press a keyboard key"}, t.Click)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_type", Description: "Type text into an input, optionally appending and submitting"}, t.Type)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_read", Description: "Read the page's visible text content, optionally scoped to a selector"}, t.Read)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_screenshot", Description: "Capture a screenshot of the browser window"}, t.Screenshot)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_scroll", Description: "Scroll to a viewport page or by a pixel amount"}, t.Scroll)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_page_info", Description: "Report viewport pagination: current page, total pages, scroll position"}, t.PageInfo)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_tabs", Description: "List open tabs with their ordinals, titles, and URLs"}, t.Tabs)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_switch_tab", Description: "Make the tab at a 1-based ordinal the current tab"}, t.SwitchTab)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_open_tab", Description: "Open a new tab, optionally at a URL"}, t.OpenTab)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_close_tab", Description: "Close the tab at a 1-based ordinal"}, t.CloseTab)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_execute", Description: "Execute JavaScript in the current page and return its result"}, t.Execute)
	mcp.AddTool(server, &mcp.Tool{Name: "browser_console", Description: "Read JavaScript errors and warnings captured from the page"}, t.Console)
}

func textResult(format string, args ...any) *result {
	return &result{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
	}
}

func errorResult(err error) (*result, error) {
	return &result{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}, nil
}

// pageStateText renders the post-navigation snapshot every navigating tool
// reports.
func pageStateText(verb string, state core.PageState) string {
	s := fmt.Sprintf("%s. Now on %q (%s)", verb, state.Title, state.URL)
	if state.SelectorFound != nil {
		if *state.SelectorFound {
			s += "; wait selector appeared"
		} else {
			s += "; wait selector did not appear before the timeout"
		}
	}
	return s
}
