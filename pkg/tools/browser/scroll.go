package browser

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	core "github.com/sable-dev/sable/pkg/browser"
)

// ScrollArgs selects one scroll mode: a 1-based viewport page, or a
// directional move by a pixel amount.
type ScrollArgs struct {
	Page      int    `json:"page,omitempty" jsonschema:"1-based viewport page to scroll to; out-of-range values clamp"`
	Direction string `json:"direction,omitempty" jsonschema:"Scroll direction, up or down, default down"`
	Pixels    int    `json:"pixels,omitempty" jsonschema:"Pixels to scroll by; default is one viewport height"`
}

// Scroll moves the viewport and reports the resulting position.
func (t *Tools) Scroll(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[ScrollArgs]]) (*result, error) {
	args := req.Params.Arguments

	var (
		info core.PageInfo
		err  error
	)
	if args.Page > 0 {
		info, err = t.session.ScrollToPage(ctx, args.Page)
	} else {
		info, err = t.session.ScrollBy(ctx, args.Direction, args.Pixels)
	}
	if err != nil {
		return errorResult(err)
	}
	return textResult("%s", renderPageInfo(info)), nil
}

// PageInfo reports the viewport pagination state without scrolling.
func (t *Tools) PageInfo(ctx context.Context, req *mcp.ServerRequest[*mcp.CallToolParamsFor[struct{}]]) (*result, error) {
	info, err := t.session.PageInfo(ctx)
	if err != nil {
		return errorResult(err)
	}
	return textResult("%s", renderPageInfo(info)), nil
}

func renderPageInfo(info core.PageInfo) string {
	return fmt.Sprintf("Viewing page %d of %d (offset %dpx, viewport %dpx, document %dpx)",
		info.CurrentPage(), info.Pages, info.ScrollOffset, info.InnerHeight, info.ScrollHeight)
}
