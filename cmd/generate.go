package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/btraven00/qrstack/internal/pipeline"
	"github.com/btraven00/qrstack/internal/sheet"
)

var (
	rowsFlag        int
	colsFlag        int
	baseURLFlag     string
	maxItemsFlag    int
	maxFileSizeFlag int64
	sheetPathFlag   string
	qrSizeFlag      int
	workersFlag     int
	forceCSVFlag    bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate numbered QR records and a printable sheet from a URL list",
	Long: `Generate reads candidate URLs from a file or stdin, validates and
sanitizes each one, and numbers them for cut-and-stack printing. Files ending
in .csv go through the referral-aware CSV extractor; everything else is
treated as one URL per line. Invalid or suspicious entries are kept and
flagged so the printed numbering matches the input.

Examples:
  qrstack generate links.txt --sheet out.html
  qrstack generate referrals.csv --rows 3 --cols 3 --sheet out.html
  cat links.txt | qrstack generate --output json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&rowsFlag, "rows", 3, "grid rows per page")
	generateCmd.Flags().IntVar(&colsFlag, "cols", 3, "grid columns per page")
	generateCmd.Flags().StringVar(&baseURLFlag, "base-url", "", "base URL joined with referral paths (default https://cursor.com/)")
	generateCmd.Flags().IntVar(&maxItemsFlag, "max-items", 500, "maximum number of records per run")
	generateCmd.Flags().Int64Var(&maxFileSizeFlag, "max-file-size", 1<<20, "maximum input file size in bytes")
	generateCmd.Flags().StringVar(&sheetPathFlag, "sheet", "", "write the printable HTML sheet to this path")
	generateCmd.Flags().IntVar(&qrSizeFlag, "qr-size", sheet.DefaultQRSize, "QR glyph size in pixels")
	generateCmd.Flags().IntVar(&workersFlag, "workers", 4, "parallel QR encode workers")
	generateCmd.Flags().BoolVar(&forceCSVFlag, "csv", false, "treat input as CSV regardless of filename")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	filename := ""
	if len(args) == 1 {
		filename = args[0]
	}

	raw, err := readInput(filename, maxFileSizeFlag)
	if err != nil {
		return err
	}

	gen := pipeline.New(generateOptions(cmd))

	var result *pipeline.Result
	if forceCSVFlag || strings.HasSuffix(strings.ToLower(filename), ".csv") {
		result, err = gen.GenerateFromCSV(raw)
	} else {
		result, err = gen.GenerateFromText(raw)
	}

	if err != nil {
		if errors.Is(err, pipeline.ErrNoCandidates) {
			return fmt.Errorf("no URLs found in input")
		}

		return err
	}

	if sheetPathFlag != "" {
		if err := writeSheet(result, sheetPathFlag); err != nil {
			return err
		}

		if !quiet {
			fmt.Fprintf(os.Stderr, "Sheet written to %s (%d pages)\n", sheetPathFlag, result.Pages())
		}
	}

	return outputResult(result)
}

// generateOptions merges flags with config-file defaults: an explicitly set
// flag wins, otherwise a value from the config file (rows, cols, base_url,
// max_items) overrides the built-in default.
func generateOptions(cmd *cobra.Command) pipeline.Options {
	opts := pipeline.Options{
		Rows:     rowsFlag,
		Cols:     colsFlag,
		BaseURL:  baseURLFlag,
		MaxItems: maxItemsFlag,
	}

	if !cmd.Flags().Changed("rows") && viper.IsSet("rows") {
		opts.Rows = viper.GetInt("rows")
	}

	if !cmd.Flags().Changed("cols") && viper.IsSet("cols") {
		opts.Cols = viper.GetInt("cols")
	}

	if opts.BaseURL == "" && viper.IsSet("base_url") {
		opts.BaseURL = viper.GetString("base_url")
	}

	if !cmd.Flags().Changed("max-items") && viper.IsSet("max_items") {
		opts.MaxItems = viper.GetInt("max_items")
	}

	return opts
}

// readInput loads the full input text from a file or stdin. File input is
// size-checked before reading; this is the boundary that owns the file-size
// policy, not the extractor.
func readInput(filename string, maxSize int64) (string, error) {
	if filename == "" {
		data, err := io.ReadAll(io.LimitReader(os.Stdin, maxSize+1))
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}

		if int64(len(data)) > maxSize {
			return "", fmt.Errorf("input exceeds maximum size of %d bytes", maxSize)
		}

		return string(data), nil
	}

	info, err := os.Stat(filename)
	if err != nil {
		return "", fmt.Errorf("cannot access input file: %w", err)
	}

	if info.Size() > maxSize {
		return "", fmt.Errorf("input file %s exceeds maximum size of %d bytes", filename, maxSize)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}

	return string(data), nil
}

func writeSheet(result *pipeline.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sheet file: %w", err)
	}
	defer f.Close()

	renderer := sheet.NewRenderer(sheet.QRCodeEncoder{}, sheet.Options{
		QRSize:  qrSizeFlag,
		Workers: workersFlag,
	})

	if err := renderer.Render(f, result); err != nil {
		return err
	}

	return f.Close()
}

func outputResult(result *pipeline.Result) error {
	switch strings.ToLower(output) {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(result)
	case "human":
		return outputHuman(result)
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

func outputHuman(result *pipeline.Result) error {
	fmt.Printf("Run %s: %d codes on %d pages (%dx%d grid)\n",
		result.RunID, result.Summary.Total, result.Pages(),
		result.Geometry.Rows, result.Geometry.Cols)

	if result.Summary.Invalid > 0 || result.Summary.Warned > 0 {
		fmt.Printf("   %d invalid, %d with warnings\n", result.Summary.Invalid, result.Summary.Warned)
	}

	if result.Summary.Truncated > 0 {
		fmt.Printf("   %d candidates dropped over the item limit\n", result.Summary.Truncated)
	}

	if quiet {
		return nil
	}

	for _, rec := range result.Records {
		marker := "✅"
		if !rec.IsValid {
			marker = "❌"
		} else if rec.HasWarning {
			marker = "⚠️"
		}

		fmt.Printf("%4d %s %s", rec.ID, marker, rec.URL)

		if rec.WarningMessage != "" {
			fmt.Printf("  [%s]", rec.WarningMessage)
		}

		fmt.Println()
	}

	return nil
}
