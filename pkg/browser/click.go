package browser

import (
	"context"
	"encoding/json"
	"fmt"
)

// ClickOptions selects one way of identifying the click target. Exactly one
// of Text, Selector, Key, or X+Y drives resolution; Selector additionally
// scopes a Text search when both are set.
type ClickOptions struct {
	// Text is the natural-language text to resolve an element from.
	Text string

	// Selector clicks its first match directly when Text is empty, and
	// scopes the text search otherwise.
	Selector string

	// Key presses a keyboard key on the focused element instead of
	// clicking.
	Key string

	// X and Y click the topmost element at explicit coordinates.
	X, Y *int

	// WaitSelector, when set, is polled for after the click.
	WaitSelector string
}

// ClickResult describes what was clicked. Description is a best-effort
// human-readable summary; no DOM handle survives past the script execution.
type ClickResult struct {
	Description   string `json:"description"`
	SelectorFound *bool  `json:"selectorFound,omitempty"`
}

// Click resolves and clicks one element. A failure to find anything is a
// normal outcome reported in the description, never an error; only
// precondition and transport failures surface as errors.
func (s *Session) Click(ctx context.Context, opts ClickOptions) (ClickResult, error) {
	if err := s.requireActive(); err != nil {
		return ClickResult{}, err
	}
	if err := opts.validate(); err != nil {
		return ClickResult{}, err
	}

	var (
		out string
		err error
	)
	if opts.Key != "" {
		code, keyCode := keyEventParams(opts.Key)
		out, err = s.runJS(ctx, pressKeyScript, opts.Key, code, keyCode)
	} else {
		out, err = s.runJS(ctx, clickScript, opts.Text, opts.Selector, opts.X, opts.Y)
	}
	if err != nil {
		return ClickResult{}, err
	}

	result := ClickResult{Description: "click dispatched"}
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil {
		s.log.Warnf("unparsable click result %q: %v", out, jsonErr)
	}
	s.log.Debugf("click: %s", result.Description)

	if opts.WaitSelector != "" {
		found := s.WaitForSelector(ctx, opts.WaitSelector)
		result.SelectorFound = &found
	}
	return result, nil
}

// validate rejects option sets that name no target. Without a target the
// script would run a text search with an empty needle, which every element
// contains, so the shortest element on the page would win.
func (o ClickOptions) validate() error {
	if (o.X == nil) != (o.Y == nil) {
		return fmt.Errorf("click coordinates require both x and y")
	}
	if o.Text == "" && o.Selector == "" && o.Key == "" && o.X == nil {
		return fmt.Errorf("click requires text, a selector, a key, or coordinates")
	}
	return nil
}

// keyEventParams maps a key name to the code and legacy keyCode the
// synthesized events carry.
func keyEventParams(key string) (code string, keyCode int) {
	switch key {
	case "Enter":
		return "Enter", 13
	case "Escape":
		return "Escape", 27
	case "Tab":
		return "Tab", 9
	case "Backspace":
		return "Backspace", 8
	case "ArrowUp":
		return "ArrowUp", 38
	case "ArrowDown":
		return "ArrowDown", 40
	case "ArrowLeft":
		return "ArrowLeft", 37
	case "ArrowRight":
		return "ArrowRight", 39
	case " ", "Space":
		return "Space", 32
	default:
		if len(key) == 1 {
			c := key[0]
			switch {
			case c >= 'a' && c <= 'z':
				// Keydown events carry the uppercase code for letters
				// regardless of which case was typed.
				return fmt.Sprintf("Key%c", c-32), int(c - 32)
			case c >= 'A' && c <= 'Z':
				return fmt.Sprintf("Key%c", c), int(c)
			case c >= '0' && c <= '9':
				return fmt.Sprintf("Digit%c", c), int(c)
			}
		}
		return key, 0
	}
}
