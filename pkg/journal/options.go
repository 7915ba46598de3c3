// Package journal implements the formatting engine for hledger-style
// plain-text journal files: line classification, transaction segmentation,
// posting alignment, chronological sorting, comment toggling, and
// balancing-amount inference.
//
// Every entry point is a pure function from input text (plus options) to
// output text. The engine holds no state between calls, so concurrent use
// from multiple goroutines is safe without locking.
package journal

// Alignment selects how posting amounts are positioned within a transaction.
type Alignment int

const (
	// AlignWidest aligns amounts per transaction, driven by the longest
	// account name in that transaction.
	AlignWidest Alignment = iota
	// AlignFixedColumn aligns all amounts in the document to a single
	// configured column.
	AlignFixedColumn
)

// NegativeStyle selects where the minus sign of a negative amount is placed
// relative to its currency symbol.
type NegativeStyle int

const (
	// SymbolBeforeSign renders negative amounts as $-100.00.
	SymbolBeforeSign NegativeStyle = iota
	// SignBeforeSymbol renders negative amounts as -$100.00.
	SignBeforeSymbol
)

// DateFormat selects the separator used when dates are rewritten.
type DateFormat int

const (
	// DateISO renders dates as YYYY-MM-DD.
	DateISO DateFormat = iota
	// DateSlash renders dates as YYYY/MM/DD.
	DateSlash
	// DateDot renders dates as YYYY.MM.DD.
	DateDot
)

// Options configures the formatter. Construct with DefaultOptions and adjust
// fields, or pass any value through Normalize to coerce out-of-range fields
// back to their defaults. A zero Options value is NOT valid input to the
// formatting entry points; they normalize internally.
type Options struct {
	// AmountColumn is the target column for the first digit of each amount
	// when Alignment is AlignFixedColumn.
	AmountColumn int
	// Alignment selects fixed-column or widest-account alignment.
	Alignment Alignment
	// IndentWidth is the number of spaces postings are indented with.
	IndentWidth int
	// NegativeStyle selects sign placement for negative amounts.
	NegativeStyle NegativeStyle
	// DateFormat selects the separator for rewritten header dates.
	DateFormat DateFormat
	// CommentChar is the character used when commenting lines out.
	CommentChar byte
}

// Default option values.
const (
	DefaultAmountColumn = 42
	DefaultIndentWidth  = 4
	DefaultCommentChar  = ';'
)

// DefaultOptions returns the fully-populated default configuration.
func DefaultOptions() Options {
	return Options{
		AmountColumn:  DefaultAmountColumn,
		Alignment:     AlignWidest,
		IndentWidth:   DefaultIndentWidth,
		NegativeStyle: SymbolBeforeSign,
		DateFormat:    DateISO,
		CommentChar:   DefaultCommentChar,
	}
}

// Normalize returns a copy of o with every out-of-range or unrecognized
// field replaced by its default. The result is always fully populated; a
// single bad field never blocks an operation.
func (o Options) Normalize() Options {
	n := o
	if n.AmountColumn < 0 {
		n.AmountColumn = DefaultAmountColumn
	}
	if n.Alignment != AlignWidest && n.Alignment != AlignFixedColumn {
		n.Alignment = AlignWidest
	}
	if n.IndentWidth < 0 {
		n.IndentWidth = DefaultIndentWidth
	}
	if n.NegativeStyle != SymbolBeforeSign && n.NegativeStyle != SignBeforeSymbol {
		n.NegativeStyle = SymbolBeforeSign
	}
	if n.DateFormat != DateISO && n.DateFormat != DateSlash && n.DateFormat != DateDot {
		n.DateFormat = DateISO
	}
	if n.CommentChar != ';' && n.CommentChar != '#' && n.CommentChar != '*' {
		n.CommentChar = DefaultCommentChar
	}
	return n
}

// separator returns the date separator for the configured format.
func (f DateFormat) separator() byte {
	switch f {
	case DateSlash:
		return '/'
	case DateDot:
		return '.'
	default:
		return '-'
	}
}
