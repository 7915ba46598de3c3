package journal

import "strings"

// ToggleComments comments or uncomments the inclusive, zero-based line range
// [startLine, endLine] as one smart block: if any non-blank line in the
// range is not yet commented, every uncommented line gets the configured
// comment character (already-commented lines are left alone, so nothing is
// ever double-commented); if the whole range is already commented, every
// line is uncommented instead. Any of ';', '#' and '*' counts as an existing
// comment marker. Blank lines are skipped throughout.
func ToggleComments(text string, startLine, endLine int, options Options) string {
	opts := options.Normalize()
	lines := strings.Split(text, "\n")

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}
	if startLine > endLine {
		return text
	}

	hasUncommented := false
	for _, line := range lines[startLine : endLine+1] {
		if isBlank(line) {
			continue
		}
		if _, _, ok := splitCommentPrefix(line); !ok {
			hasUncommented = true
			break
		}
	}

	for i := startLine; i <= endLine; i++ {
		line := lines[i]
		if isBlank(line) {
			continue
		}
		if hasUncommented {
			if _, _, ok := splitCommentPrefix(line); ok {
				continue
			}
			indent, content := splitIndent(line)
			lines[i] = indent + string(opts.CommentChar) + " " + content
		} else {
			indent, content, ok := splitCommentPrefix(line)
			if ok {
				lines[i] = indent + content
			}
		}
	}

	return strings.Join(lines, "\n")
}

// splitCommentPrefix recognizes a commented line: optional indentation, one
// of the three comment characters, and a following space. It returns the
// indentation and the content after the marker.
func splitCommentPrefix(line string) (indent, content string, ok bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) {
		return "", "", false
	}
	c := line[i]
	if c != ';' && c != '#' && c != '*' {
		return "", "", false
	}
	if i+1 >= len(line) || line[i+1] != ' ' {
		return "", "", false
	}
	return line[:i], line[i+2:], true
}

// splitIndent splits a line into its leading whitespace and the rest.
func splitIndent(line string) (indent, content string) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i], line[i:]
}
