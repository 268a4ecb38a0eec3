// Package browser exposes the browser session as MCP tools over a stdio
// transport. Each tool is a thin adapter: argument structs map one-to-one
// onto session operations, and outcomes that are data (a missed element, a
// timed-out wait) come back as tool text, while precondition and transport
// failures come back as error results.
package browser
