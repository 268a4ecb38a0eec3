package osa

import (
	"fmt"
	"strings"
)

// AppleScript templates are built from typed parameters with one escaping
// pass per quoting boundary. A JavaScript payload is escaped exactly once,
// for the AppleScript string literal it is embedded in, and only after the
// payload itself is fully assembled. Escaping earlier would corrupt the
// payload's own quoting.

// EscapeString escapes a value for inclusion in a double-quoted AppleScript
// string literal. Backslashes must be doubled before quotes are escaped;
// the reverse order turns `"` into `\\"` and breaks the literal.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// Tell wraps statements in a tell block addressed to the given application.
func Tell(app string, statements ...string) string {
	var b strings.Builder
	b.WriteString(`tell application "`)
	b.WriteString(EscapeString(app))
	b.WriteString("\"\n")
	for _, stmt := range statements {
		b.WriteString("\t")
		b.WriteString(stmt)
		b.WriteString("\n")
	}
	b.WriteString("end tell")
	return b.String()
}

// DoJavaScriptStmt builds the statement that executes a JavaScript payload
// in the current tab of the front window. The payload crosses one quoting
// boundary here and is escaped for it.
func DoJavaScriptStmt(js string) string {
	return fmt.Sprintf(`do JavaScript "%s" in current tab of front window`, EscapeString(js))
}

// SetURLStmt builds the statement that points the given 1-based tab of the
// front window at a URL.
func SetURLStmt(tabIndex int, url string) string {
	return fmt.Sprintf(`set URL of tab %d of front window to "%s"`, tabIndex, EscapeString(url))
}

// SetCurrentURLStmt builds the statement that navigates the current tab.
func SetCurrentURLStmt(url string) string {
	return fmt.Sprintf(`set URL of current tab of front window to "%s"`, EscapeString(url))
}

// SetBoundsStmt positions the front window at the given offset and size.
func SetBoundsStmt(offsetX, offsetY, width, height int) string {
	return fmt.Sprintf("set bounds of front window to {%d, %d, %d, %d}",
		offsetX, offsetY, offsetX+width, offsetY+height)
}
