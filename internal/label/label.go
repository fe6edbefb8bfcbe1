// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package label derives a short attribute string from the HTML fragment
// embedded in a placemark description.
//
// The fragment is scraped, not parsed: descriptions in the wild carry
// truncated and unbalanced markup that a strict parser would reject
// wholesale. The heuristic targets the first cell of the first table row
// styled with a background color, which is the header row in the exports
// this tool consumes.
package label

import (
	"regexp"
	"strings"
)

var (
	// headerCellRe matches the first <td> inside a <tr> whose attributes
	// carry a background-color marker.
	headerCellRe = regexp.MustCompile(`(?is)<tr[^>]*background[^>]*>.*?<td[^>]*>(.*?)</td>`)

	// tagRe strips any markup left inside the matched cell.
	tagRe = regexp.MustCompile(`<[^>]+>`)
)

// FromDescription extracts the header-cell attribute from a description
// fragment. The second return value is false when the fragment is empty,
// has no styled header row, or the cell text collapses to nothing after
// tag stripping. Extraction never fails with an error; any input the
// heuristic cannot handle yields absence.
func FromDescription(html string) (string, bool) {
	if html == "" {
		return "", false
	}
	m := headerCellRe.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	text := strings.TrimSpace(tagRe.ReplaceAllString(m[1], ""))
	if text == "" {
		return "", false
	}
	return text, true
}
