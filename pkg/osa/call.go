package osa

import (
	"encoding/json"
	"fmt"
	"strings"
)

// selfInvokingPrefixes mark scripts that are already wrapped in a call
// expression. Detection is by trimmed prefix, not parsing.
var selfInvokingPrefixes = []string{"(function", "(()", "(async"}

// Call composes a JavaScript function literal and its arguments into a
// single self-invoking expression. Arguments are serialized structurally as
// JSON, so only JSON-representable values cross the boundary; anything else
// (cycles, channels, functions) fails serialization and is rejected here.
//
// A script that already begins with a call wrapper is passed through
// untouched rather than wrapped a second time; supplying arguments with
// such a script is an error because there is no parameter list left to bind
// them to.
func Call(fn string, args ...any) (string, error) {
	trimmed := strings.TrimSpace(fn)
	if trimmed == "" {
		return "", fmt.Errorf("empty script")
	}

	for _, prefix := range selfInvokingPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			if len(args) > 0 {
				return "", fmt.Errorf("script is already self-invoking; cannot bind %d argument(s)", len(args))
			}
			return trimmed, nil
		}
	}

	encoded := make([]string, len(args))
	for i, arg := range args {
		data, err := json.Marshal(arg)
		if err != nil {
			return "", fmt.Errorf("argument %d is not serializable: %w", i, err)
		}
		encoded[i] = string(data)
	}

	return "(" + trimmed + ")(" + strings.Join(encoded, ", ") + ")", nil
}
