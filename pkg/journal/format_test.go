package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGroceryScenario(t *testing.T) {
	input := "2023-01-05   Grocery Store\n" +
		"  expenses:food      $85.50\n" +
		"    assets:bank:checking    $-85.50"

	opts := DefaultOptions()
	opts.NegativeStyle = SignBeforeSymbol

	want := "2023-01-05 Grocery Store\n" +
		"    expenses:food          $85.50\n" +
		"    assets:bank:checking  -$85.50"

	got := Format(input, opts)
	assert.Equal(t, want, got)

	// Both first digits land on the same column.
	lines := strings.Split(got, "\n")
	assert.Equal(t, 28, strings.IndexByte(lines[1], '8'))
	assert.Equal(t, 28, strings.IndexByte(lines[2], '8'))
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"2023-01-05   Grocery Store\n  expenses:food      $85.50\n    assets:bank:checking    $-85.50\n",
		"; a comment\n\n2023/1/5 * (42)  payee  ; note\n\tassets:cash\t$10\n\texpenses:misc\n",
		"comment\nanything 123 goes\nend comment\n2023-01-01 x\n  a:b  $1\n",
		"no journal content here at all\n",
		"",
	}

	for _, opts := range []Options{
		DefaultOptions(),
		{AmountColumn: 50, Alignment: AlignFixedColumn, IndentWidth: 2, NegativeStyle: SignBeforeSymbol, DateFormat: DateSlash, CommentChar: '#'},
	} {
		for _, input := range inputs {
			once := Format(input, opts)
			assert.Equal(t, once, Format(once, opts), "input %q", input)
		}
	}
}

func TestFormatHeaderNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"indent stripped", "   2023-01-05  desc", "2023-01-05 desc"},
		{"status kept", "2023-01-05  *  desc", "2023-01-05 * desc"},
		{"pending status", "2023-01-05 ! desc", "2023-01-05 ! desc"},
		{"code kept", "2023-01-05 * (INV-1)   desc", "2023-01-05 * (INV-1) desc"},
		{"comment reappended", "2023-01-05 desc   ; keep me", "2023-01-05 desc  ; keep me"},
		{"date reformatted", "2023/1/5 desc", "2023-01-05 desc"},
		{"bare date", "2023-01-05", "2023-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input, DefaultOptions()))
		})
	}
}

func TestFormatDateFormatOption(t *testing.T) {
	opts := DefaultOptions()
	opts.DateFormat = DateDot

	assert.Equal(t, "2023.01.05 desc", Format("2023-1-5 desc", opts))
}

func TestFormatFixedColumnAlignment(t *testing.T) {
	opts := DefaultOptions()
	opts.Alignment = AlignFixedColumn
	opts.AmountColumn = 30

	input := "2023-01-05 a\n  x:y  $1.00\n\n2023-01-06 b\n  much:longer:account  $2.00\n"
	got := Format(input, opts)

	for _, line := range strings.Split(got, "\n") {
		i := strings.IndexByte(line, '$')
		if i < 0 {
			continue
		}
		assert.Equal(t, 30, i+1, "line %q", line)
	}
}

func TestFormatWidestAlignmentInvariant(t *testing.T) {
	input := "2023-01-05 mixed\n" +
		"  expenses:food  $85.50\n" +
		"  assets:bank:checking:main  $-1,000.00\n" +
		"  liabilities:card  -$20.00\n"

	got := Format(input, DefaultOptions())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)

	col := -1
	for _, line := range lines[1:] {
		i := strings.IndexFunc(line, isASCIIDigit)
		require.GreaterOrEqual(t, i, 0)
		if col < 0 {
			col = i
		}
		assert.Equal(t, col, i, "line %q", line)
	}
}

func TestFormatPreservesUnparseableContent(t *testing.T) {
	input := "2023-01-05 tx\n" +
		"      expenses:food  $majority\n" +
		"  project: home\n" +
		"  ; posting comment\n" +
		"  assets:cash  $-5.00\n"

	got := Format(input, DefaultOptions())
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 5)

	// Unparseable amount: indentation normalized, content untouched.
	assert.Equal(t, "    expenses:food  $majority", lines[1])
	assert.Equal(t, "    project: home", lines[2])
	assert.Equal(t, "    ; posting comment", lines[3])
}

func TestFormatBlankLineCollapsing(t *testing.T) {
	input := "\n\n2023-01-05 a\n  x:y  $1\n\n\n\n2023-01-06 b\n  x:y  $2\n\n\n"
	got := Format(input, DefaultOptions())

	assert.False(t, strings.HasPrefix(got, "\n"))
	assert.NotContains(t, got, "\n\n\n")
	assert.True(t, strings.HasSuffix(got, "$2\n\n"))
}

func TestFormatCommentBlockVerbatim(t *testing.T) {
	input := "comment\n  2023-01-01 looks like a header\n   weird   spacing\nend comment\n"
	assert.Equal(t, input, Format(input, DefaultOptions()))
}

func TestFormatUnterminatedCommentBlock(t *testing.T) {
	input := "comment\nstill inside\n2023-01-01 never a header"
	assert.Equal(t, input, Format(input, DefaultOptions()))
}
