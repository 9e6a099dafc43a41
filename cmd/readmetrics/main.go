package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readmetrics",
	Short: "Score web articles for sentiment and readability",
	Long: `readmetrics fetches every URL listed in an input table (columns URL_ID and URL),
extracts the article text and writes one row of metrics per URL: positive, negative,
polarity and subjectivity scores against word lists, plus average sentence length,
percentage of complex words, Fog Index, average word length and personal pronoun count.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "config file (default $READMETRICS_CONFIG or ./readmetrics.yaml)")
	f.StringVarP(&flags.input, "input", "i", "", "input table (.xlsx or .csv)")
	f.StringVarP(&flags.output, "output", "o", "", "output file (.csv, .xlsx or .db)")
	f.IntVar(&flags.timeoutSecs, "timeout", 0, "per-URL fetch timeout in seconds (0 uses the default of 30)")
	f.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&flags.builtinStopwords, "builtin-stopwords", "", "also drop the builtin stop words of this language code")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
