package browser

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchArgs holds the query for the browser's configured search engine.
type SearchArgs struct {
	Query   string `json:"query" jsonschema:"The search query"`
	WaitFor string `json:"wait_for,omitempty" jsonschema:"CSS selector to wait for on the results page"`
}

// Search resolves the browser's search provider and navigates to a results
// page for the query.
func (t *Tools) Search(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[SearchArgs]]) (*result, error) {
	args := req.Params.Arguments
	state, err := t.session.Search(ctx, args.Query, args.WaitFor)
	if err != nil {
		return errorResult(err)
	}
	return textResult("%s", pageStateText("Searched for "+args.Query, state)), nil
}
