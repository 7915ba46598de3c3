package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOrdersChronologically(t *testing.T) {
	input := "2023-03-01 c\n  a:b  $3\n\n2023-01-01 a\n  a:b  $1\n\n2023-02-01 b\n  a:b  $2\n"
	want := "2023-01-01 a\n  a:b  $1\n\n2023-02-01 b\n  a:b  $2\n\n2023-03-01 c\n  a:b  $3\n"

	assert.Equal(t, want, Sort(input))
}

func TestSortPreservesDateText(t *testing.T) {
	input := "2023/3/1 later\n  a:b  $1\n\n2023.1.5 earlier\n  a:b  $2\n"
	got := Sort(input)

	// Dates are compared on a normalized key but re-emitted verbatim.
	assert.True(t, strings.HasPrefix(got, "2023.1.5 earlier"))
	assert.Contains(t, got, "2023/3/1 later")
}

func TestSortStableOnEqualDates(t *testing.T) {
	input := "2023-01-01 first\n  a:b  $1\n\n2023-01-01 second\n  a:b  $2\n"
	assert.Equal(t, input, Sort(input))
}

func TestSortIdempotent(t *testing.T) {
	input := "; prices\nP 2023-01-01 USD 1.00\n\n2023-02-01 b\n  a:b  $2\n\n2023-01-01 a\n  a:b  $1\n"
	once := Sort(input)
	assert.Equal(t, once, Sort(once))
}

func TestSortKeepsLeadingContent(t *testing.T) {
	input := "; journal header\naccount assets:cash\n\n2023-02-01 b\n  a:b  $2\n\n2023-01-01 a\n  a:b  $1\n"
	want := "; journal header\naccount assets:cash\n\n2023-01-01 a\n  a:b  $1\n\n2023-02-01 b\n  a:b  $2\n"

	assert.Equal(t, want, Sort(input))
}

func TestSortKeepsMultiParagraphNotes(t *testing.T) {
	// The blank line inside the first transaction does not end it, because
	// the next non-blank line is not a header.
	input := "2023-02-01 b\n  a:b  $2\n\n  ; afterthought note\n\n2023-01-01 a\n  a:b  $1\n"
	want := "2023-01-01 a\n  a:b  $1\n\n2023-02-01 b\n  a:b  $2\n\n  ; afterthought note\n"

	assert.Equal(t, want, Sort(input))
}

func TestSortTrailingNewline(t *testing.T) {
	withNewline := "2023-01-01 a\n  a:b  $1\n"
	withoutNewline := "2023-01-01 a\n  a:b  $1"

	assert.True(t, strings.HasSuffix(Sort(withNewline), "\n"))
	assert.False(t, strings.HasSuffix(Sort(withoutNewline), "\n"))
}

func TestSortNoTransactions(t *testing.T) {
	assert.Equal(t, "", Sort(""))
	assert.Equal(t, "; only comments\n", Sort("; only comments\n"))
}
