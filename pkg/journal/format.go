package journal

import "strings"

// Format rewrites the whole document: headers normalized to column 0 with
// the configured date format, postings aligned per the configured alignment,
// blank lines collapsed to single separators. Free text and anything the
// engine cannot parse pass through untouched. Format is idempotent:
// formatting already-formatted text is a no-op.
func Format(text string, options Options) string {
	opts := options.Normalize()
	lines, finalNewline := splitLines(text)

	blocks := segment(lines, formatMode)
	if len(blocks) == 0 {
		return ""
	}

	fixedTarget := -1
	if opts.Alignment == AlignFixedColumn {
		fixedTarget = opts.AmountColumn
	}

	var out []string
	for i, b := range blocks {
		if i > 0 && b.separated {
			out = append(out, "")
		}
		if b.tx == nil {
			out = append(out, b.lines...)
			continue
		}
		out = append(out, formatHeaderLine(b.tx.HeaderLine, opts))
		out = append(out, alignTransaction(b.tx, opts, fixedTarget)...)
	}

	result := strings.Join(out, "\n")
	if len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		// The source ended with a blank line; keep exactly one.
		result += "\n"
	}
	if finalNewline {
		result += "\n"
	}
	return result
}

// splitLines splits text into lines and reports whether it ended with a
// newline, so the caller can reproduce it on output.
func splitLines(text string) ([]string, bool) {
	if text == "" {
		return nil, false
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1], true
	}
	return lines, false
}
