// Package autoformat continues structured line prefixes when a line
// break is inserted: numbered lists renumber the lines that follow, and
// bullet prefixes repeat onto the new line. A prefix with no content
// after it terminates the list with a bare line break.
//
// The engine mutates the buffer through a single atomic edit batch per
// line break, applied highest offset first so earlier replacements never
// invalidate later offsets.
package autoformat
