package journal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceContext carries the editor's view of the line being completed: its
// current text and the cursor column the suggestion will be inserted at.
type BalanceContext struct {
	CurrentLineText string
	CursorColumn    int
}

// CalculateBalancingAmount computes the amount that zeroes out a transaction
// with exactly one amount-less posting, formatted and padded so it can be
// inserted as-is at the cursor for accountName. The returned text is spacing
// plus amount, aligned consistently with the formatter's digits column and
// never closer than two spaces to what precedes it.
//
// The boolean result is false - a normal "no suggestion" outcome, not an
// error - whenever the transaction is ambiguous: zero or several postings
// without amounts, more than one currency in play, or existing postings that
// already sum to zero.
func CalculateBalancingAmount(tx Transaction, options Options, accountName string, ctx *BalanceContext) (string, bool) {
	opts := options.Normalize()

	if len(tx.Lines) < 2 {
		return "", false
	}

	sum := decimal.Zero
	currency := ""
	missing := 0
	var parsed []alignedPosting

	for _, line := range tx.Lines[1:] {
		if isBlank(line) || IsCommentLine(line) || IsMetadataLine(line) {
			continue
		}
		detail := ExtractPostingDetail(line)
		if detail.Account == "" || isMetadataKey(detail.Account) {
			continue
		}

		amount, ok := Amount{}, false
		if detail.Amount != "" {
			amount, ok = ParseAmount(detail.Amount)
		}
		if !ok {
			missing++
			continue
		}

		if currency == "" {
			currency = amount.Currency
		} else if currency != amount.Currency {
			return "", false
		}
		sum = sum.Add(amount.Value)

		converted := ConvertNegativeStyle(detail.Amount, opts.NegativeStyle)
		parsed = append(parsed, alignedPosting{
			detail: detail,
			amount: converted,
			prefix: digitsPrefixLen(converted),
		})
	}

	if missing != 1 || currency == "" {
		return "", false
	}

	balance := sum.Neg()
	if balance.IsZero() {
		return "", false
	}
	formatted := FormatAmountValue(balance, currency, opts.NegativeStyle)

	// The posting being completed participates in the widest-column
	// computation through its account name.
	parsed = append(parsed, alignedPosting{
		detail: PostingDetail{Account: accountName},
	})

	target := opts.AmountColumn
	if opts.Alignment == AlignWidest {
		target = widestDigitsColumn(parsed, opts.IndentWidth)
	}

	anchor := opts.IndentWidth + len(accountName)
	if ctx != nil {
		anchor = ctx.CursorColumn
	}

	gap := target - anchor - digitsPrefixLen(formatted)
	if gap < 2 {
		gap = 2
	}
	return strings.Repeat(" ", gap) + formatted, true
}
