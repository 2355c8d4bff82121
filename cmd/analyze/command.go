package analyze

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lexforge/textlab/internal/core"
	v1 "github.com/lexforge/textlab/internal/logic/v1"
	"github.com/lexforge/textlab/pkg/errors"
	"github.com/lexforge/textlab/pkg/i18n"
	"github.com/lexforge/textlab/pkg/types"
	"github.com/lexforge/textlab/pkg/utils"
)

type Options struct {
	ConfigPath string
	JSON       bool
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	// Add flags for generic options
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "run with the given config file")
	flagSet.BoolVar(&o.JSON, "json", false, "render results as json")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:          "analyze",
		Short:        "text analysis toolkit",
		SilenceUsage: true,
	}
	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newFreqCommand(opts),
		newDupsCommand(opts),
		newReverseCommand(opts),
		newLangCommand(opts),
		newReportCommand(opts),
	)
	return cmd
}

func setupLogic(cmd *cobra.Command, opts *Options) *v1.AnalyzeLogic {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))
	return v1.NewAnalyzeLogic(cmd.Context(), app)
}

// readSource pulls the input from the first positional arg, or stdin.
func readSource(cmd *cobra.Command, args []string) (string, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	input, err := utils.ReadSource(path, cmd.InOrStdin())
	if err != nil {
		return "", errors.New("analyze.readSource", i18n.ERROR_UNREADABLE, err)
	}
	return input, nil
}

func newFreqCommand(opts *Options) *cobra.Command {
	var (
		byWord bool
		fold   bool
		topN   int
	)
	cmd := &cobra.Command{
		Use:   "freq [file]",
		Short: "character or word frequency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			logic := setupLogic(cmd, opts)
			var report *types.FreqReport
			if byWord {
				report, err = logic.WordFrequency(input, fold, topN)
			} else {
				report, err = logic.CharFrequency(input, fold, topN)
			}
			if err != nil {
				return err
			}

			if opts.JSON {
				return renderJSON(cmd, report)
			}
			for _, entry := range report.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", printableToken(entry.Token), entry.Count)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&byWord, "words", "w", false, "count words instead of characters")
	cmd.Flags().BoolVar(&fold, "fold", false, "case-insensitive counting")
	cmd.Flags().IntVarP(&topN, "top", "n", 0, "keep only the top n entries")
	return cmd
}

func newDupsCommand(opts *Options) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "dups [file]",
		Short: "values occurring more than once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			report, err := setupLogic(cmd, opts).Duplicates(input, by)
			if err != nil {
				return err
			}

			if opts.JSON {
				return renderJSON(cmd, report)
			}
			for _, entry := range report.Duplicates {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", printableToken(entry.Value), entry.Count)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", types.DUP_BY_LINE, "split input by: line, word or char")
	return cmd
}

func newReverseCommand(opts *Options) *cobra.Command {
	var preserve bool
	cmd := &cobra.Command{
		Use:   "reverse [file]",
		Short: "reverse the word order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			out := setupLogic(cmd, opts).ReverseWords(input, preserve)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&preserve, "preserve-space", false, "keep the original whitespace runs in place")
	return cmd
}

func newLangCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lang [file]",
		Short: "detect the natural language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			report, err := setupLogic(cmd, opts).Language(input)
			if err != nil {
				return err
			}

			if opts.JSON {
				return renderJSON(cmd, report)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) confidence=%.2f reliable=%t\n",
				report.Language, report.Code, report.Confidence, report.Reliable)
			return nil
		},
	}
	return cmd
}

func newReportCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "combined analysis report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			report, err := setupLogic(cmd, opts).Report(input)
			if err != nil {
				return err
			}
			// report is json only
			return renderJSON(cmd, report)
		},
	}
	return cmd
}
