package journal

import "strings"

// Comment-block delimiter keywords, matched against whole trimmed lines.
const (
	commentBlockStart = "comment"
	commentBlockEnd   = "end comment"
)

// IsCommentLine reports whether the trimmed line starts with one of the
// three journal comment characters.
func IsCommentLine(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	return t[0] == ';' || t[0] == '#' || t[0] == '*'
}

// IsTransactionHeaderLine reports whether the trimmed line begins with a
// valid journal date, which is what makes a line open a transaction.
func IsTransactionHeaderLine(line string) bool {
	_, _, ok := ExtractDateComponents(strings.TrimSpace(line))
	return ok
}

// IsCommentBlockStart reports whether the line opens a comment block.
func IsCommentBlockStart(line string) bool {
	return strings.TrimSpace(line) == commentBlockStart
}

// IsCommentBlockEnd reports whether the line closes a comment block.
func IsCommentBlockEnd(line string) bool {
	return strings.TrimSpace(line) == commentBlockEnd
}

// IsMetadataLine reports whether a posting-position line is actually a
// metadata tag such as "project:" or "project: home". Metadata lines are
// single-space separated with no run of two or more spaces (or a tab), which
// is what distinguishes them from postings carrying amounts.
func IsMetadataLine(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" {
		return false
	}
	if strings.Contains(t, "  ") || strings.Contains(t, "\t") {
		return false
	}

	key, _, found := strings.Cut(t, " ")
	if found {
		return strings.HasSuffix(key, ":")
	}
	return strings.HasSuffix(t, ":")
}

// isMetadataKey reports whether an extracted account token is actually a
// metadata key rather than an account name.
func isMetadataKey(account string) bool {
	return strings.HasSuffix(account, ":") || strings.Contains(account, ": ")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
