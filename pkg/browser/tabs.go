package browser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sable-dev/sable/pkg/osa"
)

// Tab describes one tab of the managed window. Tabs are addressed purely by
// 1-based ordinal and re-queried from the live browser on every call; no
// identity is cached, so ordinals can shift if the user manipulates tabs
// between calls. That race is accepted and documented, not defended against.
type Tab struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// listTabsScript emits one tab per line as index<TAB>url<TAB>title, with a
// trailing line naming the current tab's ordinal.
const listTabsScript = `set output to ""
set tabOrdinal to 0
set currentOrdinal to index of current tab of front window
repeat with t in tabs of front window
	set tabOrdinal to tabOrdinal + 1
	set output to output & tabOrdinal & tab & (URL of t) & tab & (name of t) & linefeed
end repeat
return output & "current" & tab & currentOrdinal`

// Tabs lists the tabs of the managed window. Malformed rows in the script
// output are dropped rather than failing the listing.
func (s *Session) Tabs(ctx context.Context) ([]Tab, error) {
	if err := s.requireActive(); err != nil {
		return nil, err
	}

	out, err := s.ch.TellBrowser(ctx, listTabsScript)
	if err != nil {
		return nil, err
	}
	return parseTabList(out, s.log.Warnf), nil
}

// parseTabList parses the line-oriented tab listing. warnf receives a note
// for every row that cannot be parsed.
func parseTabList(out string, warnf func(string, ...any)) []Tab {
	tabs := []Tab{}
	current := 0

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) >= 2 && fields[0] == "current" {
			if n, err := strconv.Atoi(strings.TrimSpace(fields[1])); err == nil {
				current = n
			}
			continue
		}
		if len(fields) < 3 {
			warnf("dropping malformed tab row %q", line)
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil || index < 1 {
			warnf("dropping malformed tab row %q", line)
			continue
		}
		tabs = append(tabs, Tab{Index: index, URL: fields[1], Title: fields[2]})
	}

	for i := range tabs {
		tabs[i].Active = tabs[i].Index == current
	}
	return tabs
}

// SwitchTab makes the tab at the given 1-based ordinal current.
func (s *Session) SwitchTab(ctx context.Context, index int) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	if index < 1 {
		return fmt.Errorf("tab index must be 1-based, got %d", index)
	}
	_, err := s.ch.TellBrowser(ctx,
		fmt.Sprintf("set current tab of front window to tab %d of front window", index))
	return err
}

// OpenTab opens a new tab, optionally at a URL, makes it current, and
// synchronizes on the load.
func (s *Session) OpenTab(ctx context.Context, url string) (PageState, error) {
	if err := s.requireActive(); err != nil {
		return PageState{}, err
	}

	stmts := []string{"tell front window to set current tab to (make new tab)"}
	if url != "" {
		if err := s.checkURL(url); err != nil {
			return PageState{}, err
		}
		stmts = []string{
			fmt.Sprintf(`tell front window to set current tab to (make new tab with properties {URL:"%s"})`,
				osa.EscapeString(url)),
		}
	}
	if _, err := s.ch.TellBrowser(ctx, stmts...); err != nil {
		return PageState{}, err
	}
	return s.settle(ctx, "")
}

// CloseTab closes the tab at the given 1-based ordinal.
func (s *Session) CloseTab(ctx context.Context, index int) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	if index < 1 {
		return fmt.Errorf("tab index must be 1-based, got %d", index)
	}
	_, err := s.ch.TellBrowser(ctx, fmt.Sprintf("close tab %d of front window", index))
	return err
}
