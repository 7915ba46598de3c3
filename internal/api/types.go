package api

import "github.com/shunichi-ikebuchi/journalfmt/pkg/journal"

// OptionsPayload carries per-request formatting options. Every field is
// optional; unset fields keep the server's configured value and
// unrecognized enum strings are ignored.
type OptionsPayload struct {
	AmountColumn  *int    `json:"amount_column,omitempty"`
	Alignment     *string `json:"alignment,omitempty"`
	IndentWidth   *int    `json:"indent_width,omitempty"`
	NegativeStyle *string `json:"negative_style,omitempty"`
	DateFormat    *string `json:"date_format,omitempty"`
	CommentChar   *string `json:"comment_char,omitempty"`
}

// resolve merges the payload onto the server defaults.
func (p *OptionsPayload) resolve(base journal.Options) journal.Options {
	if p == nil {
		return base
	}
	if p.AmountColumn != nil {
		base.AmountColumn = *p.AmountColumn
	}
	if p.Alignment != nil {
		switch *p.Alignment {
		case "widest":
			base.Alignment = journal.AlignWidest
		case "fixed":
			base.Alignment = journal.AlignFixedColumn
		}
	}
	if p.IndentWidth != nil {
		base.IndentWidth = *p.IndentWidth
	}
	if p.NegativeStyle != nil {
		switch *p.NegativeStyle {
		case "symbol-before-sign":
			base.NegativeStyle = journal.SymbolBeforeSign
		case "sign-before-symbol":
			base.NegativeStyle = journal.SignBeforeSymbol
		}
	}
	if p.DateFormat != nil {
		switch *p.DateFormat {
		case "YYYY-MM-DD":
			base.DateFormat = journal.DateISO
		case "YYYY/MM/DD":
			base.DateFormat = journal.DateSlash
		case "YYYY.MM.DD":
			base.DateFormat = journal.DateDot
		}
	}
	if p.CommentChar != nil && len(*p.CommentChar) == 1 {
		base.CommentChar = (*p.CommentChar)[0]
	}
	return base.Normalize()
}

// FormatRequest is the body for POST /v1/format and POST /v1/sort.
type FormatRequest struct {
	Text    string          `json:"text"`
	Options *OptionsPayload `json:"options,omitempty"`
}

// TextResponse returns transformed journal text.
type TextResponse struct {
	Text string `json:"text"`
}

// ToggleRequest is the body for POST /v1/toggle. Line numbers are
// zero-based and the range is inclusive.
type ToggleRequest struct {
	Text      string          `json:"text"`
	StartLine int             `json:"start_line"`
	EndLine   int             `json:"end_line"`
	Options   *OptionsPayload `json:"options,omitempty"`
}

// BalanceRequest is the body for POST /v1/balance. Line is the zero-based
// line inside the transaction to complete; CursorColumn, when present,
// anchors the suggestion's padding at the editor's cursor.
type BalanceRequest struct {
	Text            string          `json:"text"`
	Line            int             `json:"line"`
	Account         string          `json:"account"`
	CurrentLineText string          `json:"current_line_text,omitempty"`
	CursorColumn    *int            `json:"cursor_column,omitempty"`
	Options         *OptionsPayload `json:"options,omitempty"`
}

// BalanceResponse carries the padded balancing amount. OK is false when the
// transaction offers nothing to suggest.
type BalanceResponse struct {
	Suggestion string `json:"suggestion"`
	OK         bool   `json:"ok"`
}

// AccountsResponse lists account names for completion.
type AccountsResponse struct {
	Accounts []string `json:"accounts"`
}
