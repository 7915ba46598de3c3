package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanTextPostingAccounts(t *testing.T) {
	text := "2024-01-15 grocery\n" +
		"    expenses:food:groceries  $45.67\n" +
		"    assets:checking\n" +
		"\n" +
		"2024-01-16 rent\n" +
		"    expenses:rent  $1,200.00\n" +
		"    assets:checking  $-1,200.00\n"

	res := ScanText(text)

	assert.Equal(t, []string{
		"expenses:food:groceries",
		"assets:checking",
		"expenses:rent",
	}, res.Accounts)
	assert.Empty(t, res.Includes)
}

func TestScanTextSkipsCommentsAndMetadata(t *testing.T) {
	text := "2024-01-15 trip\n" +
		"    ; paid in cash\n" +
		"    project: vacation\n" +
		"    expenses:travel  $300\n" +
		"    assets:cash\n"

	res := ScanText(text)

	assert.Equal(t, []string{"expenses:travel", "assets:cash"}, res.Accounts)
}

func TestScanTextSkipsCommentBlocks(t *testing.T) {
	text := "comment\n" +
		"2024-01-15 not real\n" +
		"    expenses:fake  $1\n" +
		"end comment\n" +
		"2024-01-16 real\n" +
		"    expenses:real  $2\n" +
		"    assets:cash\n"

	res := ScanText(text)

	assert.Equal(t, []string{"expenses:real", "assets:cash"}, res.Accounts)
}

func TestScanTextAccountDirectives(t *testing.T) {
	text := "account assets:savings\n" +
		"account expenses:food ; declared up front\n" +
		"\n" +
		"2024-01-15 lunch\n" +
		"    expenses:food  $12\n" +
		"    assets:savings\n"

	res := ScanText(text)

	assert.Equal(t, []string{"assets:savings", "expenses:food"}, res.Accounts)
}

func TestScanTextIncludeDirectives(t *testing.T) {
	text := "include 2023.journal\n" +
		"!include shared/common.journal\n" +
		"includenospace.journal\n"

	res := ScanText(text)

	assert.Equal(t, []string{"2023.journal", "shared/common.journal"}, res.Includes)
	assert.Empty(t, res.Accounts)
}

func TestScanTextDeduplicates(t *testing.T) {
	text := "2024-01-15 a\n" +
		"    assets:cash  $1\n" +
		"    income:misc\n" +
		"\n" +
		"2024-01-16 b\n" +
		"    assets:cash  $2\n" +
		"    income:misc\n"

	res := ScanText(text)

	assert.Equal(t, []string{"assets:cash", "income:misc"}, res.Accounts)
}
