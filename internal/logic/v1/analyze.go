package v1

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/lexforge/textlab/internal/core"
	"github.com/lexforge/textlab/pkg/errors"
	"github.com/lexforge/textlab/pkg/i18n"
	"github.com/lexforge/textlab/pkg/lang"
	"github.com/lexforge/textlab/pkg/textkit"
	"github.com/lexforge/textlab/pkg/types"
	"github.com/lexforge/textlab/pkg/utils"
)

type AnalyzeLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAnalyzeLogic(ctx context.Context, core *core.Core) *AnalyzeLogic {
	l := &AnalyzeLogic{
		ctx:  ctx,
		core: core,
	}

	return l
}

func (l *AnalyzeLogic) freqOptions(fold bool) []textkit.FreqOption {
	var opts []textkit.FreqOption
	if fold || l.core.Cfg().Analyze.CaseFold {
		opts = append(opts, textkit.WithCaseFold())
	}
	return opts
}

func (l *AnalyzeLogic) topN(n int) int {
	if n > 0 {
		return n
	}
	return l.core.Cfg().Analyze.TopN
}

// CharFrequency builds a character frequency report. Entries are sorted by
// count descending, ties by codepoint, and clipped to topN.
func (l *AnalyzeLogic) CharFrequency(input string, fold bool, topN int) (*types.FreqReport, error) {
	if input == "" {
		return nil, errors.New("AnalyzeLogic.CharFrequency", i18n.ERROR_EMPTY_INPUT, nil)
	}

	counts := textkit.CharFrequency(input, l.freqOptions(fold)...)
	entries := sortFreqEntries(lo.MapToSlice(counts, func(r rune, count int) types.FreqEntry {
		return types.FreqEntry{Token: string(r), Count: count}
	}))

	return &types.FreqReport{
		Mode:     types.FREQ_MODE_CHAR,
		Total:    lo.Sum(lo.Values(counts)),
		Distinct: len(counts),
		Entries:  clip(entries, l.topN(topN)),
	}, nil
}

// WordFrequency builds a word frequency report with the same ordering rules
// as CharFrequency.
func (l *AnalyzeLogic) WordFrequency(input string, fold bool, topN int) (*types.FreqReport, error) {
	if input == "" {
		return nil, errors.New("AnalyzeLogic.WordFrequency", i18n.ERROR_EMPTY_INPUT, nil)
	}

	counts := textkit.WordFrequency(input, l.freqOptions(fold)...)
	entries := sortFreqEntries(lo.MapToSlice(counts, func(w string, count int) types.FreqEntry {
		return types.FreqEntry{Token: w, Count: count}
	}))

	return &types.FreqReport{
		Mode:     types.FREQ_MODE_WORD,
		Total:    lo.Sum(lo.Values(counts)),
		Distinct: len(counts),
		Entries:  clip(entries, l.topN(topN)),
	}, nil
}

// Duplicates reports the values of input occurring more than once, split by
// line, word or char.
func (l *AnalyzeLogic) Duplicates(input, by string) (*types.DuplicateReport, error) {
	if input == "" {
		return nil, errors.New("AnalyzeLogic.Duplicates", i18n.ERROR_EMPTY_INPUT, nil)
	}

	var items []string
	switch by {
	case types.DUP_BY_LINE:
		items = strings.Split(strings.TrimSuffix(utils.NormalizeNewlines(input), "\n"), "\n")
	case types.DUP_BY_WORD:
		items = strings.Fields(input)
	case types.DUP_BY_CHAR:
		items = strings.Split(input, "")
	default:
		return nil, errors.New("AnalyzeLogic.Duplicates.by", i18n.ERROR_INVALIDARGUMENT, nil)
	}

	counts := textkit.Counts(items)
	dups := lo.Map(textkit.Duplicates(items), func(v string, _ int) types.DuplicateEntry {
		return types.DuplicateEntry{Value: v, Count: counts[v]}
	})

	return &types.DuplicateReport{
		By:         by,
		Total:      len(items),
		Distinct:   len(textkit.Distinct(items)),
		Duplicates: dups,
	}, nil
}

// ReverseWords reverses the word order of input under the given whitespace
// policy.
func (l *AnalyzeLogic) ReverseWords(input string, preserve bool) string {
	policy := textkit.WhitespaceCollapse
	if preserve {
		policy = textkit.WhitespacePreserve
	}
	return textkit.ReverseWords(input, policy)
}

// Language detects the natural language of input.
func (l *AnalyzeLogic) Language(input string) (*types.LangReport, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.New("AnalyzeLogic.Language", i18n.ERROR_EMPTY_INPUT, nil)
	}

	info := lang.Detect(input)
	return &types.LangReport{
		Language:   info.Language,
		Code:       info.Code,
		Confidence: info.Confidence,
		Reliable:   info.Reliable,
	}, nil
}

// Report runs every analysis over input and assembles one document.
func (l *AnalyzeLogic) Report(input string) (*types.AnalysisReport, error) {
	if input == "" {
		return nil, errors.New("AnalyzeLogic.Report", i18n.ERROR_EMPTY_INPUT, nil)
	}

	chars, err := l.CharFrequency(input, false, 0)
	if err != nil {
		return nil, errors.Trace("AnalyzeLogic.Report", err)
	}
	words, err := l.WordFrequency(input, false, 0)
	if err != nil {
		return nil, errors.Trace("AnalyzeLogic.Report", err)
	}
	dups, err := l.Duplicates(input, types.DUP_BY_WORD)
	if err != nil {
		return nil, errors.Trace("AnalyzeLogic.Report", err)
	}

	report := &types.AnalysisReport{
		Runes:          chars.Total,
		Words:          words.Total,
		Lines:          len(strings.Split(strings.TrimSuffix(utils.NormalizeNewlines(input), "\n"), "\n")),
		TopChars:       chars.Entries,
		TopWords:       words.Entries,
		DuplicateWords: dups.Duplicates,
	}

	if langReport, err := l.Language(input); err == nil {
		report.Language = langReport
	}

	slog.Debug("analysis report assembled",
		slog.Int("runes", report.Runes),
		slog.Int("words", report.Words),
		slog.Int("lines", report.Lines))

	return report, nil
}

func sortFreqEntries(entries []types.FreqEntry) []types.FreqEntry {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}

func clip(entries []types.FreqEntry, n int) []types.FreqEntry {
	if n > 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}
