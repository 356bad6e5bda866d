// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"sort"
	"strings"
)

// subcategories maps each supported arXiv archive to its subcategory
// codes. The table covers the archives the CLI advertises; arXiv itself
// accepts more, which pass through Code unvalidated when fully qualified
// (e.g. "cond-mat.str-el").
var subcategories = map[string][]string{
	"cs":       {"AI", "CL", "CC", "CE", "CG", "CR", "CV", "CY", "DB", "DC", "DL", "DM", "DS", "ET", "FL", "GL", "GR", "GT", "HC", "IR", "IT", "LG", "LO", "MA", "MM", "MS", "NA", "NE", "NI", "OH", "OS", "PF", "PL", "RO", "SC", "SD", "SE", "SI", "SY"},
	"math":     {"AC", "AG", "AP", "AT", "CA", "CO", "CT", "CV", "DG", "DS", "FA", "GM", "GN", "GR", "GT", "HO", "IT", "KT", "LO", "MG", "MP", "NA", "NT", "OA", "OC", "PR", "QA", "RA", "RT", "SG", "SP", "ST"},
	"physics":  {"acc-ph", "ao-ph", "app-ph", "atm-clus", "atom-ph", "bio-ph", "chem-ph", "class-ph", "comp-ph", "data-an", "ed-ph", "flu-dyn", "gen-ph", "geo-ph", "hist-ph", "ins-det", "med-ph", "optics", "plasm-ph", "pop-ph", "soc-ph", "space-ph"},
	"stat":     {"AP", "CO", "ME", "ML", "OT", "TH"},
	"q-bio":    {"BM", "CB", "GN", "MN", "NC", "OT", "PE", "QM", "SC", "TO"},
	"q-fin":    {"CP", "EC", "GN", "MF", "PM", "PR", "RM", "ST", "TR"},
	"econ":     {"EM", "GN", "TH"},
	"eess":     {"AS", "IV", "SP", "SY"},
	"hep-th":   nil,
	"hep-ph":   nil,
	"hep-ex":   nil,
	"gr-qc":    nil,
	"quant-ph": nil,
	"astro-ph": {"CO", "EP", "GA", "HE", "IM", "SR"},
	"cond-mat": {"dis-nn", "mes-hall", "mtrl-sci", "other", "quant-gas", "soft", "stat-mech", "str-el", "supr-con"},
	"nucl-ex":  nil,
	"nucl-th":  nil,
}

// Code builds the category code for an arXiv query from a high-level
// category and an optional subcategory. An empty subcategory matches the
// whole archive. A fully qualified category ("cs.LG") passes through.
func Code(category, sub string) (string, error) {
	category = strings.TrimSpace(category)
	sub = strings.TrimSpace(sub)

	if strings.Contains(category, ".") && sub == "" {
		return category, nil
	}

	subs, ok := subcategories[category]
	if !ok {
		return "", fmt.Errorf("unknown arXiv category %q (run the categories command for the list)", category)
	}
	if sub == "" {
		if subs == nil {
			return category, nil
		}
		return category + ".*", nil
	}

	for _, s := range subs {
		if s == sub {
			return category + "." + sub, nil
		}
	}
	return "", fmt.Errorf("unknown subcategory %q for category %q", sub, category)
}

// Categories returns the supported archive names, sorted.
func Categories() []string {
	names := make([]string, 0, len(subcategories))
	for name := range subcategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Subcategories returns the known subcategory codes for an archive, or
// nil when the archive has none (or is unknown).
func Subcategories(category string) []string {
	subs := subcategories[category]
	if subs == nil {
		return nil
	}
	out := make([]string, len(subs))
	copy(out, subs)
	return out
}
