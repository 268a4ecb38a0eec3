package browser

import (
	"context"
	"encoding/json"
	"fmt"
)

// PageInfo carries the viewport metrics used as the pagination unit. It is
// recomputed on every request and never cached, because the page may have
// changed between operations.
type PageInfo struct {
	InnerHeight  int `json:"innerHeight"`
	ScrollHeight int `json:"scrollHeight"`
	ScrollOffset int `json:"scrollOffset"`
	Pages        int `json:"pages"`
}

// CurrentPage returns the 1-based viewport page the scroll offset falls in.
func (p PageInfo) CurrentPage() int {
	if p.InnerHeight <= 0 {
		return 1
	}
	return p.ScrollOffset/p.InnerHeight + 1
}

// PageInfo queries the live viewport metrics and derives the page count as
// ceil(scrollHeight / innerHeight).
func (s *Session) PageInfo(ctx context.Context) (PageInfo, error) {
	if err := s.requireActive(); err != nil {
		return PageInfo{}, err
	}

	out, err := s.runJS(ctx, pageInfoScript)
	if err != nil {
		return PageInfo{}, err
	}

	var info PageInfo
	if jsonErr := json.Unmarshal([]byte(out), &info); jsonErr != nil {
		return PageInfo{}, fmt.Errorf("unparsable page info %q: %w", out, jsonErr)
	}
	info.Pages = pageCount(info.ScrollHeight, info.InnerHeight)
	return info, nil
}

// pageCount computes ceil(scrollHeight / innerHeight), with at least one
// page for degenerate geometry.
func pageCount(scrollHeight, innerHeight int) int {
	if innerHeight <= 0 || scrollHeight <= 0 {
		return 1
	}
	pages := (scrollHeight + innerHeight - 1) / innerHeight
	if pages < 1 {
		return 1
	}
	return pages
}

// clampPage restricts a requested page to [1, pages].
func clampPage(page, pages int) int {
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

// ScrollToPage scrolls to the given 1-based viewport page, clamping the
// request into range, and returns the refreshed metrics.
func (s *Session) ScrollToPage(ctx context.Context, page int) (PageInfo, error) {
	info, err := s.PageInfo(ctx)
	if err != nil {
		return PageInfo{}, err
	}

	target := clampPage(page, info.Pages)
	offset := (target - 1) * info.InnerHeight
	if _, err := s.runJS(ctx, scrollToScript, offset); err != nil {
		return PageInfo{}, err
	}

	info.ScrollOffset = offset
	return info, nil
}

// ScrollBy scrolls by a signed pixel delta; direction "up" negates it. A
// zero pixel count defaults to one full viewport height.
func (s *Session) ScrollBy(ctx context.Context, direction string, pixels int) (PageInfo, error) {
	info, err := s.PageInfo(ctx)
	if err != nil {
		return PageInfo{}, err
	}

	delta := pixels
	if delta == 0 {
		delta = info.InnerHeight
	}
	if direction == "up" {
		delta = -delta
	}

	if _, err := s.runJS(ctx, scrollByScript, delta); err != nil {
		return PageInfo{}, err
	}
	return s.PageInfo(ctx)
}
