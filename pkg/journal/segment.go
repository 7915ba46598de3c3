package journal

// Transaction is one dated entry: its header line plus every line that
// belongs to it, all kept as raw text. Transactions are rebuilt from the
// document on every call and never persisted.
type Transaction struct {
	// HeaderLine is the raw first line: date, optional status and code,
	// description.
	HeaderLine string
	// Lines holds the transaction's raw text in order, header included.
	Lines []string
}

// segmentMode selects the blank-line rule used while segmenting.
type segmentMode int

const (
	// formatMode closes an open transaction on every blank line.
	formatMode segmentMode = iota
	// sortMode closes an open transaction on a blank line only when the
	// next non-blank line starts a new transaction, so multi-paragraph
	// notes stay attached to their transaction while reordering.
	sortMode
)

// block is one re-emittable unit of a segmented document: either a
// transaction or a run of free text (comments outside transactions, comment
// blocks, leading content). separated records whether a blank gap preceded
// the block in the source.
type block struct {
	separated bool
	tx        *Transaction
	lines     []string
}

// segment runs the line classifier over the document and groups lines into
// blocks. It never fails: unrecognized content passes through as free text
// and an unterminated comment block simply runs to end of input.
func segment(lines []string, mode segmentMode) []block {
	var (
		blocks         []block
		curTx          *Transaction
		curText        []string
		txSeparated    bool
		textSeparated  bool
		pendingBlank   bool
		seenAny        bool
		inCommentBlock bool
	)

	flushText := func() {
		if curText != nil {
			blocks = append(blocks, block{separated: textSeparated, lines: curText})
			curText = nil
		}
	}
	closeTx := func() {
		if curTx != nil {
			blocks = append(blocks, block{separated: txSeparated, tx: curTx})
			curTx = nil
		}
	}
	appendText := func(line string) {
		if curText == nil {
			textSeparated = pendingBlank && seenAny
			pendingBlank = false
		}
		curText = append(curText, line)
		seenAny = true
	}
	openTx := func(line string) {
		flushText()
		closeTx()
		txSeparated = pendingBlank && seenAny
		pendingBlank = false
		curTx = &Transaction{HeaderLine: line, Lines: []string{line}}
		seenAny = true
	}

	for i, line := range lines {
		if inCommentBlock {
			if curTx != nil {
				curTx.Lines = append(curTx.Lines, line)
			} else {
				appendText(line)
			}
			if IsCommentBlockEnd(line) {
				inCommentBlock = false
			}
			continue
		}

		switch {
		case isBlank(line):
			if curTx != nil {
				if mode == sortMode && !nextNonBlankIsHeader(lines, i+1) {
					// Paragraph break inside a note; keep it.
					curTx.Lines = append(curTx.Lines, line)
					continue
				}
				closeTx()
			} else {
				flushText()
			}
			pendingBlank = seenAny

		case IsCommentBlockStart(line):
			if curTx != nil && mode == sortMode {
				// Keep the block attached so it travels with the
				// transaction when reordered.
				curTx.Lines = append(curTx.Lines, line)
			} else {
				closeTx()
				appendText(line)
			}
			inCommentBlock = true

		case IsTransactionHeaderLine(line):
			openTx(line)

		default:
			// Comments inside a transaction stay with it; anything else
			// outside a transaction passes through as free text.
			if curTx != nil {
				curTx.Lines = append(curTx.Lines, line)
			} else {
				appendText(line)
			}
		}
	}

	flushText()
	closeTx()
	return blocks
}

// TransactionAt returns the transaction enclosing the zero-based line index.
// A line belongs to a transaction when a header line is reachable upward
// without crossing a blank line, and the transaction runs until the next
// blank line or header.
func TransactionAt(text string, line int) (Transaction, bool) {
	lines, _ := splitLines(text)
	if line < 0 || line >= len(lines) {
		return Transaction{}, false
	}

	start := -1
	for i := line; i >= 0; i-- {
		if isBlank(lines[i]) {
			break
		}
		if IsTransactionHeaderLine(lines[i]) {
			start = i
			break
		}
	}
	if start == -1 {
		return Transaction{}, false
	}

	tx := Transaction{HeaderLine: lines[start]}
	for i := start; i < len(lines); i++ {
		if i > start && (isBlank(lines[i]) || IsTransactionHeaderLine(lines[i])) {
			break
		}
		tx.Lines = append(tx.Lines, lines[i])
	}
	return tx, true
}

// nextNonBlankIsHeader reports whether the next non-blank line at or after
// from opens a transaction. End of input counts as a boundary.
func nextNonBlankIsHeader(lines []string, from int) bool {
	for _, line := range lines[from:] {
		if isBlank(line) {
			continue
		}
		return IsTransactionHeaderLine(line)
	}
	return true
}
