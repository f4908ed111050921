package lessonplan

import "strings"

// ExtractSection returns the body of the named section from generated
// lesson-plan text. Sections are delimited by a `---NAME---` marker line;
// the body runs to the next line starting with `---` or to end of text.
// An absent marker yields the empty string — never an error.
func ExtractSection(full, name string) string {
	marker := "---" + name + "---"
	idx := strings.Index(full, marker)
	if idx < 0 {
		return ""
	}
	after := full[idx+len(marker):]
	if next := strings.Index(after, "\n---"); next >= 0 {
		after = after[:next]
	}
	return strings.TrimSpace(after)
}

// ItemList splits a section body into its bullet items, in order. Leading
// bullet glyphs, hyphens and "N. " / "N) " enumerators are stripped; empty
// lines are dropped.
func ItemList(block string) []string {
	if block == "" {
		return nil
	}
	var out []string
	for _, raw := range strings.Split(block, "\n") {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		s = strings.TrimLeft(s, "•- \t")
		if len(s) > 2 && s[0] >= '0' && s[0] <= '9' && (s[1] == '.' || s[1] == ')') {
			s = strings.TrimSpace(s[2:])
		}
		out = append(out, s)
	}
	return out
}

// Distribute assigns items to n buckets by strict index-mod-n placement,
// preserving input order within each bucket. No rebalancing happens: with
// fewer items than buckets the trailing buckets stay empty and are filled
// with the "-" placeholder, as is every bucket when items is empty.
func Distribute(items []string, n int) [][]string {
	if n <= 0 {
		return nil
	}
	buckets := make([][]string, n)
	if len(items) == 0 {
		for i := range buckets {
			buckets[i] = []string{"-"}
		}
		return buckets
	}
	for idx, item := range items {
		b := idx % n
		buckets[b] = append(buckets[b], item)
	}
	for i, b := range buckets {
		if len(b) == 0 {
			buckets[i] = []string{"-"}
		}
	}
	return buckets
}

// isPlaceholder reports whether a bucket holds only the "-" placeholder.
func isPlaceholder(bucket []string) bool {
	return len(bucket) == 1 && bucket[0] == "-"
}
