// Package titletag pulls inline #tag references out of free-text task titles.
package titletag

import "strings"

// Extract splits a raw title on whitespace and removes every token of the
// form #name. The last such token wins as the extracted tag name; the
// remaining words are rejoined with single spaces. A lone "#" is not a tag
// marker and stays in the title. ok is false when no tag was present.
func Extract(raw string) (title string, tag string, ok bool) {
	words := strings.Fields(raw)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if strings.HasPrefix(w, "#") && len(w) > 1 {
			tag = w[1:]
			ok = true
			continue
		}
		kept = append(kept, w)
	}
	title = strings.TrimSpace(strings.Join(kept, " "))
	return title, tag, ok
}
