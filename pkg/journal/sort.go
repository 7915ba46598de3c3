package journal

import (
	"sort"
	"strings"
)

// Sort reorders the document's transactions chronologically. The sort is
// stable, so transactions sharing a date keep their original relative order,
// and transaction text is re-emitted exactly as written: sorting never
// reformats dates or postings. Content preceding the first transaction stays
// at the top. A blank line ends a transaction here only when the next
// non-blank line starts another transaction, so multi-paragraph notes travel
// with their transaction.
func Sort(text string) string {
	lines, finalNewline := splitLines(text)
	blocks := segment(lines, sortMode)

	var leading []string
	var txs []*Transaction
	for _, b := range blocks {
		if b.tx != nil {
			txs = append(txs, b.tx)
		} else {
			leading = append(leading, b.lines...)
		}
	}

	if len(txs) == 0 {
		if len(leading) == 0 {
			return ""
		}
		result := strings.Join(leading, "\n")
		if finalNewline {
			result += "\n"
		}
		return result
	}

	keys := make([]string, len(txs))
	for i, tx := range txs {
		keys[i] = sortKey(tx.HeaderLine)
	}
	order := make([]int, len(txs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]] < keys[order[b]]
	})

	var out []string
	if len(leading) > 0 {
		out = append(out, leading...)
		out = append(out, "")
	}
	for i, idx := range order {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, txs[idx].Lines...)
	}

	result := strings.Join(out, "\n")
	if finalNewline {
		result += "\n"
	}
	return result
}

// sortKey derives the ISO YYYY-MM-DD ordering key from a header line without
// touching the stored text.
func sortKey(headerLine string) string {
	date, _, ok := ExtractDateComponents(strings.TrimSpace(headerLine))
	if !ok {
		return ""
	}
	return FormatDate(date, DateISO)
}
