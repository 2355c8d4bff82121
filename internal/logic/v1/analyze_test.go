package v1_test

import (
	"context"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/lexforge/textlab/internal/core"
	v1 "github.com/lexforge/textlab/internal/logic/v1"
	"github.com/lexforge/textlab/pkg/errors"
	"github.com/lexforge/textlab/pkg/i18n"
	"github.com/lexforge/textlab/pkg/types"
)

func setupAnalyzeLogic() *v1.AnalyzeLogic {
	app := core.MustSetupCore(core.Config{})
	return v1.NewAnalyzeLogic(context.Background(), app)
}

func Test_CharFrequency(t *testing.T) {
	report, err := setupAnalyzeLogic().CharFrequency("abbccc", false, 2)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, types.FREQ_MODE_CHAR, report.Mode)
	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 3, report.Distinct)
	assert.Equal(t, []types.FreqEntry{{Token: "c", Count: 3}, {Token: "b", Count: 2}}, report.Entries)
}

func Test_CharFrequencyTieOrder(t *testing.T) {
	report, err := setupAnalyzeLogic().CharFrequency("ba", false, 0)
	if err != nil {
		t.Fatal(err)
	}

	// equal counts fall back to codepoint order
	assert.Equal(t, []types.FreqEntry{{Token: "a", Count: 1}, {Token: "b", Count: 1}}, report.Entries)
}

func Test_WordFrequency(t *testing.T) {
	report, err := setupAnalyzeLogic().WordFrequency("go go Go stop", true, 0)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, types.FREQ_MODE_WORD, report.Mode)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Distinct)
	assert.Equal(t, types.FreqEntry{Token: "go", Count: 3}, report.Entries[0])
}

func Test_Duplicates(t *testing.T) {
	report, err := setupAnalyzeLogic().Duplicates("the cat and the hat and", types.DUP_BY_WORD)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 4, report.Distinct)
	assert.Equal(t, []types.DuplicateEntry{{Value: "the", Count: 2}, {Value: "and", Count: 2}}, report.Duplicates)
}

func Test_DuplicatesByLine(t *testing.T) {
	report, err := setupAnalyzeLogic().Duplicates("alpha\nbeta\nalpha\n", types.DUP_BY_LINE)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, []types.DuplicateEntry{{Value: "alpha", Count: 2}}, report.Duplicates)
}

func Test_DuplicatesByChar(t *testing.T) {
	report, err := setupAnalyzeLogic().Duplicates("新年新", types.DUP_BY_CHAR)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, []types.DuplicateEntry{{Value: "新", Count: 2}}, report.Duplicates)
}

func Test_DuplicatesInvalidBy(t *testing.T) {
	_, err := setupAnalyzeLogic().Duplicates("abc", "sentence")

	var e *errors.Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, i18n.ERROR_INVALIDARGUMENT, e.Key())
}

func Test_EmptyInput(t *testing.T) {
	logic := setupAnalyzeLogic()

	for name, run := range map[string]func() error{
		"char freq": func() error { _, err := logic.CharFrequency("", false, 0); return err },
		"word freq": func() error { _, err := logic.WordFrequency("", false, 0); return err },
		"dups":      func() error { _, err := logic.Duplicates("", types.DUP_BY_WORD); return err },
		"lang":      func() error { _, err := logic.Language("  \n"); return err },
		"report":    func() error { _, err := logic.Report(""); return err },
	} {
		err := run()

		var e *errors.Error
		assert.True(t, errors.As(err, &e), name)
		assert.Equal(t, i18n.ERROR_EMPTY_INPUT, e.Key(), name)
	}
}

func Test_ReverseWords(t *testing.T) {
	logic := setupAnalyzeLogic()

	assert.Equal(t, "two one", logic.ReverseWords("one  two", false))
	assert.Equal(t, "two  one", logic.ReverseWords("one  two", true))
}

func Test_Language(t *testing.T) {
	report, err := setupAnalyzeLogic().Language("The quick brown fox jumps over the lazy dog every single day.")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "eng", report.Code)
	t.Log(report.Language, report.Confidence, report.Reliable)
}

func Test_Report(t *testing.T) {
	input := "the cat sat on the mat\nthe end\n"
	report, err := setupAnalyzeLogic().Report(input)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, utf8.RuneCountInString(input), report.Runes)
	assert.Equal(t, 8, report.Words)
	assert.Equal(t, 2, report.Lines)
	assert.NotEmpty(t, report.TopChars)
	assert.LessOrEqual(t, len(report.TopChars), 10)
	assert.Contains(t, report.DuplicateWords, types.DuplicateEntry{Value: "the", Count: 3})
}
