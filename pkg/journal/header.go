package journal

import "strings"

// formatHeaderLine rewrites a transaction header as
// "date [status] [code] [description]" with single spaces, the date
// normalized to the configured format, and no leading indentation. A
// trailing ';' comment is detached first and reappended verbatim. Lines that
// do not start with a valid date are returned unchanged so unrecognized
// content is never corrupted.
func formatHeaderLine(line string, opts Options) string {
	body, comment := splitTrailingComment(line)

	t := strings.TrimSpace(body)
	date, rawDate, ok := ExtractDateComponents(t)
	if !ok {
		return line
	}
	rest := strings.TrimSpace(t[len(rawDate):])

	parts := []string{FormatDate(date, opts.DateFormat)}

	// Optional status marker.
	if rest == "*" || rest == "!" {
		parts = append(parts, rest)
		rest = ""
	} else if len(rest) > 1 && (rest[0] == '*' || rest[0] == '!') && (rest[1] == ' ' || rest[1] == '\t') {
		parts = append(parts, rest[:1])
		rest = strings.TrimSpace(rest[1:])
	}

	// Optional parenthesized code.
	if strings.HasPrefix(rest, "(") {
		if end := strings.IndexByte(rest, ')'); end >= 0 {
			parts = append(parts, rest[:end+1])
			rest = strings.TrimSpace(rest[end+1:])
		}
	}

	if rest != "" {
		parts = append(parts, rest)
	}

	formatted := strings.Join(parts, " ")
	if comment != "" {
		formatted += "  " + comment
	}
	return formatted
}

// splitTrailingComment splits a header line into its body and a trailing
// ';' comment. The comment is returned verbatim, ';' included.
func splitTrailingComment(line string) (body, comment string) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i], strings.TrimRight(line[i:], " \t")
	}
	return line, ""
}
