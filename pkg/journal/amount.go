package journal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a parsed posting amount: a signed decimal value and the currency
// token exactly as it appeared, which may be a symbol ("$"), a bare word
// ("USD"), or a quoted phrase ("\"US Dollar\"").
type Amount struct {
	Value    decimal.Decimal
	Currency string
}

// DefaultCurrency is assumed when an amount carries no currency token.
const DefaultCurrency = "$"

// ParseAmount extracts a signed value and currency from free-form amount
// text. Two grammars are tried in order:
//
//  1. currency-first: [-] currency [-] digits, e.g. $-1,200.50 or -€30
//  2. number-first: [-] digits [currency], e.g. -100.50 USD or 85.50
//
// A minus in either position makes the value negative; two minuses never
// cancel out. Text following the matched amount (lot or price annotations)
// is ignored. The boolean result is false when no numeric value can be
// extracted.
func ParseAmount(text string) (Amount, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Amount{}, false
	}
	if a, ok := parseCurrencyFirst(s); ok {
		return a, true
	}
	return parseNumberFirst(s)
}

func parseCurrencyFirst(s string) (Amount, bool) {
	pos := 0
	negative := false
	if pos < len(s) && s[pos] == '-' {
		negative = true
		pos++
		pos = skipSpaces(s, pos)
	}

	currency, n := scanCurrencyToken(s[pos:])
	if n == 0 {
		return Amount{}, false
	}
	pos += n
	pos = skipSpaces(s, pos)

	if pos < len(s) && s[pos] == '-' {
		negative = true
		pos++
	}

	value, n := scanNumber(s[pos:])
	if n == 0 {
		return Amount{}, false
	}

	if negative {
		value = value.Neg()
	}
	return Amount{Value: value, Currency: currency}, true
}

func parseNumberFirst(s string) (Amount, bool) {
	pos := 0
	negative := false
	if pos < len(s) && s[pos] == '-' {
		negative = true
		pos++
	}

	value, n := scanNumber(s[pos:])
	if n == 0 {
		return Amount{}, false
	}
	pos += n
	pos = skipSpaces(s, pos)

	currency, n := scanCurrencyToken(s[pos:])
	if n == 0 {
		currency = DefaultCurrency
	}

	if negative {
		value = value.Neg()
	}
	return Amount{Value: value, Currency: currency}, true
}

// FormatAmountValue renders value with exactly two decimal places and
// thousands separators, placing sign and currency per style:
// SignBeforeSymbol yields -$100.00, SymbolBeforeSign yields $-100.00.
func FormatAmountValue(value decimal.Decimal, currency string, style NegativeStyle) string {
	digits := addThousandsSeparators(value.Abs().StringFixed(2))
	if value.Sign() >= 0 {
		return currency + digits
	}
	if style == SignBeforeSymbol {
		return "-" + currency + digits
	}
	return currency + "-" + digits
}

// ConvertNegativeStyle rewrites an amount string that already carries its
// currency between the two negative styles by swapping the sign and currency
// in place, e.g. $-85.50 <-> -$85.50. Everything from the first digit on is
// preserved untouched, so price and lot annotations survive. Amounts without
// both a sign and a currency before the digits are returned unchanged.
func ConvertNegativeStyle(amount string, style NegativeStyle) string {
	first := strings.IndexFunc(amount, isASCIIDigit)
	if first <= 0 {
		return amount
	}
	prefix, rest := amount[:first], amount[first:]

	dash := strings.IndexByte(prefix, '-')
	if dash < 0 {
		return amount
	}
	currency := strings.TrimSpace(prefix[:dash] + prefix[dash+1:])
	if currency == "" {
		return amount
	}

	if style == SignBeforeSymbol {
		return "-" + currency + rest
	}
	return currency + "-" + rest
}

// digitsPrefixLen returns the number of characters before the first digit of
// an amount string, i.e. the width of its sign and currency symbol. Returns
// -1 when the string contains no digit.
func digitsPrefixLen(amount string) int {
	return strings.IndexFunc(amount, isASCIIDigit)
}

// scanCurrencyToken reads a currency token from the start of s: either a
// double-quoted phrase (returned with its quotes) or a run of characters
// that are not digits, signs, whitespace, or punctuation.
func scanCurrencyToken(s string) (string, int) {
	if len(s) > 0 && s[0] == '"' {
		end := strings.IndexByte(s[1:], '"')
		if end < 0 {
			return "", 0
		}
		return s[:end+2], end + 2
	}

	n := 0
	for n < len(s) && isCurrencyChar(s[n]) {
		n++
	}
	if n == 0 {
		return "", 0
	}
	return s[:n], n
}

// scanNumber reads digits with optional thousands commas and an optional
// decimal fraction, returning the value with commas stripped.
func scanNumber(s string) (decimal.Decimal, int) {
	n := 0
	for n < len(s) && (isASCIIDigit(rune(s[n])) || s[n] == ',') {
		n++
	}
	if n == 0 || !isASCIIDigit(rune(s[0])) {
		return decimal.Zero, 0
	}
	if n+1 < len(s) && s[n] == '.' && isASCIIDigit(rune(s[n+1])) {
		n++
		for n < len(s) && isASCIIDigit(rune(s[n])) {
			n++
		}
	}

	value, err := decimal.NewFromString(strings.ReplaceAll(s[:n], ",", ""))
	if err != nil {
		return decimal.Zero, 0
	}
	return value, n
}

// addThousandsSeparators inserts commas into the integer part of a plain
// decimal string such as 1234567.89.
func addThousandsSeparators(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// isCurrencyChar reports whether c can be part of a bare currency token.
// Digits, signs, whitespace, and common punctuation are excluded so the
// token ends where the number or an annotation begins.
func isCurrencyChar(c byte) bool {
	if c >= '0' && c <= '9' {
		return false
	}
	switch c {
	case '-', '+', ' ', '\t', '"', ',', '.', ';', ':', '@', '=', '(', ')', '[', ']', '{', '}':
		return false
	}
	return c > ' '
}

func skipSpaces(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}
