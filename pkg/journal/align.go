package journal

import "strings"

// PostingDetail is the account/amount split of one posting line. It is
// derived on demand and never stored. Amount is empty when the line carries
// none.
type PostingDetail struct {
	Trimmed string
	Account string
	Amount  string
}

// ExtractPostingDetail splits a posting line into account and amount on the
// first run of two or more spaces (or a tab). Single-space lines fall back
// to the shortest split whose tail still parses as an amount, so postings
// written with a lone space between account and amount are still recognized.
func ExtractPostingDetail(line string) PostingDetail {
	t := strings.TrimSpace(line)
	d := PostingDetail{Trimmed: t}
	if t == "" {
		return d
	}

	if account, amount, ok := splitOnGap(t); ok {
		d.Account = account
		d.Amount = amount
		return d
	}

	// Fallback: scan single-space splits right to left and take the first
	// tail that is a parseable amount, i.e. the trailing numeric token.
	for i := len(t) - 1; i >= 0; i-- {
		if t[i] != ' ' {
			continue
		}
		tail := strings.TrimSpace(t[i+1:])
		if _, ok := ParseAmount(tail); ok && strings.ContainsFunc(tail, isASCIIDigit) {
			d.Account = strings.TrimSpace(t[:i])
			d.Amount = tail
			return d
		}
	}

	d.Account = t
	return d
}

// splitOnGap splits on the first run of >=2 spaces or a tab.
func splitOnGap(t string) (account, amount string, ok bool) {
	for i := 0; i < len(t); i++ {
		if t[i] == '\t' || (t[i] == ' ' && i+1 < len(t) && t[i+1] == ' ') {
			return strings.TrimSpace(t[:i]), strings.TrimSpace(t[i:]), true
		}
	}
	return "", "", false
}

// alignedPosting is the working form of one transaction line during
// alignment.
type alignedPosting struct {
	detail   PostingDetail
	amount   string // style-converted amount, "" when not alignable
	prefix   int    // characters before the amount's first digit
	passthru bool   // comment/metadata/blank: indentation-normalized only
}

// alignTransaction rewrites the posting lines of one transaction with
// canonical indentation and the amount's first digit at the target column.
// fixedTarget is the document-wide digits column, or -1 to compute the
// per-transaction widest column. The header line is not touched here.
func alignTransaction(tx *Transaction, opts Options, fixedTarget int) []string {
	indent := strings.Repeat(" ", opts.IndentWidth)

	postings := make([]alignedPosting, 0, len(tx.Lines)-1)
	for _, line := range tx.Lines[1:] {
		p := alignedPosting{}
		if isBlank(line) || IsCommentLine(line) || IsMetadataLine(line) {
			p.passthru = true
			p.detail.Trimmed = strings.TrimSpace(line)
			postings = append(postings, p)
			continue
		}

		p.detail = ExtractPostingDetail(line)
		if p.detail.Account != "" && p.detail.Amount != "" && !isMetadataKey(p.detail.Account) {
			amount := ConvertNegativeStyle(p.detail.Amount, opts.NegativeStyle)
			if prefix := digitsPrefixLen(amount); prefix >= 0 {
				p.amount = amount
				p.prefix = prefix
			}
		}
		postings = append(postings, p)
	}

	target := fixedTarget
	if target < 0 {
		target = widestDigitsColumn(postings, opts.IndentWidth)
	}

	out := make([]string, 0, len(tx.Lines)-1)
	for _, p := range postings {
		if p.passthru && p.detail.Trimmed == "" {
			out = append(out, "")
			continue
		}
		if p.amount == "" {
			// No alignable amount: normalize indentation, keep content.
			out = append(out, indent+p.detail.Trimmed)
			continue
		}
		gap := target - opts.IndentWidth - len(p.detail.Account) - p.prefix
		if gap < 2 {
			gap = 2
		}
		out = append(out, indent+p.detail.Account+strings.Repeat(" ", gap)+p.amount)
	}
	return out
}

// widestDigitsColumn computes the per-transaction target column for the
// first digit of every amount: wide enough that all first digits line up and
// the longest account still gets two spaces before its amount.
func widestDigitsColumn(postings []alignedPosting, indentWidth int) int {
	target := 0
	longestAccount := 0
	for _, p := range postings {
		if p.passthru || p.detail.Account == "" {
			continue
		}
		if len(p.detail.Account) > longestAccount {
			longestAccount = len(p.detail.Account)
		}
		if p.amount != "" {
			if col := indentWidth + len(p.detail.Account) + p.prefix + 2; col > target {
				target = col
			}
		}
	}
	if col := indentWidth + longestAccount + 2; col > target {
		target = col
	}
	return target
}
