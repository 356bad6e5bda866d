// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"regexp"
	"strconv"
	"strings"
)

// idPattern matches both modern arXiv IDs ("2301.07041", "2301.07041v2",
// "arXiv:2301.07041") and the pre-2007 archive/number form
// ("hep-th/9901001"), which historical scans still encounter.
var idPattern = regexp.MustCompile(`^(?:arXiv:)?(\d{4}\.\d{4,5}|[a-z-]+(?:\.[A-Z]{2})?/\d{7})(v\d+)?$`)

// doiPattern matches bare DOIs: "10.1145/1234567.1234568".
var doiPattern = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)

// NormalizeID strips the optional "arXiv:" prefix and any version suffix
// from an arXiv ID. It returns the empty string when the input is not an
// arXiv ID.
func NormalizeID(id string) string {
	m := idPattern.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return ""
	}
	return m[1]
}

// IsDOI reports whether s looks like a bare DOI.
func IsDOI(s string) bool {
	return doiPattern.MatchString(strings.TrimSpace(s))
}

// ExtractID pulls the arXiv ID from an Atom entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" yields "2301.07041").
func ExtractID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := idURL[idx+len(prefix):]

	// Strip version suffix ("v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
