package journal

import "fmt"

// DateComponents holds a calendar date extracted from journal text.
// Month is 1-12 and Day is 1-31; days are not validated against the length
// of the month.
type DateComponents struct {
	Year  int
	Month int
	Day   int
}

// ExtractDateComponents scans the start of text for a date of the form
// YYYY<sep>M[M]<sep>D[D], where <sep> is '-', '/' or '.' and must be the
// same character in both positions. It returns the components, the exact
// prefix of text that matched, and whether a valid date was found.
//
// The scanner is written out explicitly rather than as a regular expression
// because the separator is a backreference, which Go's regexp package does
// not support.
func ExtractDateComponents(text string) (DateComponents, string, bool) {
	pos := 0
	year, n := scanDigits(text[pos:], 4, 4)
	if n == 0 {
		return DateComponents{}, "", false
	}
	pos += n

	sep, ok := scanSeparator(text, pos)
	if !ok {
		return DateComponents{}, "", false
	}
	pos++

	month, n := scanDigits(text[pos:], 1, 2)
	if n == 0 {
		return DateComponents{}, "", false
	}
	pos += n

	if pos >= len(text) || text[pos] != sep {
		return DateComponents{}, "", false
	}
	pos++

	day, n := scanDigits(text[pos:], 1, 2)
	if n == 0 {
		return DateComponents{}, "", false
	}
	pos += n

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return DateComponents{}, "", false
	}

	return DateComponents{Year: year, Month: month, Day: day}, text[:pos], true
}

// FormatDate renders components zero-padded to 4/2/2 digits, joined with the
// separator of the given format.
func FormatDate(d DateComponents, format DateFormat) string {
	sep := format.separator()
	return fmt.Sprintf("%04d%c%02d%c%02d", d.Year, sep, d.Month, sep, d.Day)
}

// scanDigits reads between min and max leading ASCII digits from s and
// returns their integer value and the number of digits consumed. A zero
// count means fewer than min digits were present, or the run would exceed
// max (a 5-digit year is not a year).
func scanDigits(s string, min, max int) (int, int) {
	n := 0
	value := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		if n == max {
			return 0, 0
		}
		value = value*10 + int(s[n]-'0')
		n++
	}
	if n < min {
		return 0, 0
	}
	return value, n
}

// scanSeparator reports the date separator at text[pos], if any.
func scanSeparator(text string, pos int) (byte, bool) {
	if pos >= len(text) {
		return 0, false
	}
	switch text[pos] {
	case '-', '/', '.':
		return text[pos], true
	}
	return 0, false
}
