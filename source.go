package bodytext

import "strings"

// URLSource loads a list of URL strings from an external location.
// Implementations hide the file-format details (plain text vs tabular).
type URLSource interface {
	// Load reads URLs from path. Entries are trimmed and blank entries
	// dropped; the order of the source is preserved. Unsupported or
	// unreadable sources return an EINVALID error before any network
	// activity starts.
	Load(path string) ([]string, error)
}

// DedupURLs removes duplicate entries preserving first-occurrence order.
// Entries are trimmed before comparison and blank entries are dropped.
func DedupURLs(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
