package accounts

import (
	"strings"

	"github.com/shunichi-ikebuchi/journalfmt/pkg/journal"
)

// ScanResult holds what a single pass over journal text produced.
type ScanResult struct {
	// Accounts lists every account name seen on a posting line or an
	// account directive, in order of first appearance.
	Accounts []string
	// Includes lists the raw targets of include directives, unresolved.
	Includes []string
}

// ScanText extracts account names and include targets from journal text.
// Account names come from posting lines inside transactions and from
// top-level "account" directives. Comment blocks are skipped entirely.
func ScanText(text string) ScanResult {
	var res ScanResult
	seen := make(map[string]bool)

	addAccount := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		res.Accounts = append(res.Accounts, name)
	}

	inCommentBlock := false
	inTransaction := false

	for _, line := range strings.Split(text, "\n") {
		if inCommentBlock {
			if journal.IsCommentBlockEnd(line) {
				inCommentBlock = false
			}
			continue
		}
		if journal.IsCommentBlockStart(line) {
			inCommentBlock = true
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			inTransaction = false
			continue
		}
		if journal.IsCommentLine(line) {
			continue
		}
		if journal.IsTransactionHeaderLine(line) {
			inTransaction = true
			continue
		}

		indented := line[0] == ' ' || line[0] == '\t'
		if inTransaction && indented {
			if journal.IsMetadataLine(trimmed) {
				continue
			}
			addAccount(journal.ExtractPostingDetail(line).Account)
			continue
		}

		if target, ok := includeTarget(trimmed); ok {
			res.Includes = append(res.Includes, target)
			continue
		}
		if name, ok := accountDirective(trimmed); ok {
			addAccount(name)
		}
	}
	return res
}

// includeTarget recognizes "include PATH" and "!include PATH" directives.
func includeTarget(trimmed string) (string, bool) {
	rest, ok := strings.CutPrefix(trimmed, "!include")
	if !ok {
		rest, ok = strings.CutPrefix(trimmed, "include")
	}
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	target := strings.TrimSpace(rest)
	if target == "" {
		return "", false
	}
	return target, true
}

// accountDirective recognizes top-level "account NAME" declarations.
func accountDirective(trimmed string) (string, bool) {
	rest, ok := strings.CutPrefix(trimmed, "account")
	if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
		return "", false
	}
	name := strings.TrimSpace(rest)
	// Declarations may carry a trailing comment.
	if i := strings.IndexByte(name, ';'); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	if name == "" {
		return "", false
	}
	return name, true
}
