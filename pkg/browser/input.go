package browser

import (
	"context"
	"encoding/json"
)

// TypeOptions configures a text write into the page.
type TypeOptions struct {
	// Text is the value to write.
	Text string

	// Selector targets a specific element; when empty the focused editable
	// element is used, then the first visible text input in document order.
	Selector string

	// Append concatenates onto the existing value instead of replacing it.
	Append bool

	// Submit synthesizes an Enter key sequence after the write and submits
	// the owning form, covering keyboard-driven and script-driven forms.
	Submit bool
}

// Type writes text into an input. A missing target is reported in the
// returned description, not as an error.
func (s *Session) Type(ctx context.Context, opts TypeOptions) (string, error) {
	if err := s.requireActive(); err != nil {
		return "", err
	}

	out, err := s.runJS(ctx, typeScript, opts.Text, opts.Selector, opts.Append, opts.Submit)
	if err != nil {
		return "", err
	}

	var result struct {
		Description string `json:"description"`
	}
	if jsonErr := json.Unmarshal([]byte(out), &result); jsonErr != nil || result.Description == "" {
		return "text written", nil
	}
	s.log.Debugf("type: %s", result.Description)
	return result.Description, nil
}
