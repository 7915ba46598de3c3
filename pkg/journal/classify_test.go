package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCommentLine(t *testing.T) {
	assert.True(t, IsCommentLine("; note"))
	assert.True(t, IsCommentLine("  # note"))
	assert.True(t, IsCommentLine("* heading"))
	assert.False(t, IsCommentLine("2023-01-01 x"))
	assert.False(t, IsCommentLine(""))
	assert.False(t, IsCommentLine("   "))
}

func TestIsTransactionHeaderLine(t *testing.T) {
	assert.True(t, IsTransactionHeaderLine("2023-01-01 payee"))
	assert.True(t, IsTransactionHeaderLine("  2023/1/1 indented"))
	assert.False(t, IsTransactionHeaderLine("; 2023-01-01 commented"))
	assert.False(t, IsTransactionHeaderLine("account assets:cash"))
}

func TestCommentBlockDelimiters(t *testing.T) {
	assert.True(t, IsCommentBlockStart("comment"))
	assert.True(t, IsCommentBlockStart("  comment  "))
	assert.False(t, IsCommentBlockStart("comment here"))
	assert.True(t, IsCommentBlockEnd("end comment"))
	assert.False(t, IsCommentBlockEnd("end"))
}

func TestIsMetadataLine(t *testing.T) {
	assert.True(t, IsMetadataLine("  project:"))
	assert.True(t, IsMetadataLine("  project: home"))
	assert.False(t, IsMetadataLine("  expenses:food  $5"))
	assert.False(t, IsMetadataLine("  expenses:food"))
	assert.False(t, IsMetadataLine(""))
}

func TestOptionsNormalize(t *testing.T) {
	got := Options{
		AmountColumn:  -1,
		Alignment:     Alignment(99),
		IndentWidth:   -4,
		NegativeStyle: NegativeStyle(7),
		DateFormat:    DateFormat(7),
		CommentChar:   'x',
	}.Normalize()

	assert.Equal(t, DefaultOptions(), got)
}

func TestOptionsNormalizeKeepsValidValues(t *testing.T) {
	opts := Options{
		AmountColumn:  0,
		Alignment:     AlignFixedColumn,
		IndentWidth:   2,
		NegativeStyle: SignBeforeSymbol,
		DateFormat:    DateDot,
		CommentChar:   '#',
	}

	assert.Equal(t, opts, opts.Normalize())
}
