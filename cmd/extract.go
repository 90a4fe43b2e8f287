package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btraven00/qrstack/internal/extract"
)

var extractBaseURL string

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract candidate URLs from a CSV or text file without validating",
	Long: `Extract runs only the extraction step and prints the candidate URLs
it finds, one per line. Useful for checking what a CSV export will turn into
before generating a sheet.

Examples:
  qrstack extract referrals.csv
  qrstack extract --base-url https://example.org/ referrals.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractBaseURL, "base-url", "", "base URL joined with referral paths (default https://cursor.com/)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	filename := args[0]

	raw, err := readInput(filename, maxFileSizeFlag)
	if err != nil {
		return err
	}

	var candidates []string
	if strings.HasSuffix(strings.ToLower(filename), ".csv") {
		candidates, err = extract.FromCSV(raw, extract.Options{BaseURL: extractBaseURL})
		if err != nil {
			return err
		}
	} else {
		candidates = extract.FromText(raw)
	}

	if len(candidates) == 0 {
		return fmt.Errorf("no candidates found in %s", filename)
	}

	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "Found %d candidates in %s\n", len(candidates), filename)
	}

	for _, c := range candidates {
		fmt.Println(c)
	}

	return nil
}
