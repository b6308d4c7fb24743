package argparse

import (
	"sort"
	"strings"
)

// parseTagString parses the inner syntax of an argparse struct tag:
// comma-separated items, each a bare key or key=value. Single quotes in a
// value protect commas, e.g. help='one, two'. Spaces around keys are
// ignored so tags can be written with breathing room.
func parseTagString(tag string) map[string]string {
	ret := map[string]string{}

	var items []string
	sb := strings.Builder{}
	inQuote := false
	for _, c := range tag {
		switch {
		case c == '\'':
			inQuote = !inQuote
		case c == ',' && !inQuote:
			items = append(items, sb.String())
			sb.Reset()
		default:
			sb.WriteRune(c)
		}
	}
	items = append(items, sb.String())

	for _, item := range items {
		key, val := item, ""
		if i := strings.IndexByte(item, '='); i >= 0 {
			key, val = item[:i], item[i+1:]
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		ret[key] = val
	}
	return ret
}

func joinSorted(keys []string) string {
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
