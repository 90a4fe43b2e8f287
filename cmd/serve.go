package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/btraven00/qrstack/internal/pipeline"
	"github.com/btraven00/qrstack/internal/sheet"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve the printable sheet over HTTP for printing from a browser",
	Long: `Serve regenerates the sheet from the input file on every request and
serves it at /, so the file can be edited and the browser refreshed until the
sheet looks right, then printed with the browser's print dialog.

Examples:
  qrstack serve links.txt
  qrstack serve referrals.csv --addr :9090`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().IntVar(&rowsFlag, "rows", 3, "grid rows per page")
	serveCmd.Flags().IntVar(&colsFlag, "cols", 3, "grid columns per page")
	serveCmd.Flags().StringVar(&baseURLFlag, "base-url", "", "base URL joined with referral paths (default https://cursor.com/)")
}

func runServe(cmd *cobra.Command, args []string) error {
	filename := args[0]

	// Fail fast on unreadable input before binding the port.
	if _, err := readInput(filename, maxFileSizeFlag); err != nil {
		return err
	}

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/", sheetHandler(cmd, filename)).Methods("GET")

	if !quiet {
		fmt.Fprintf(os.Stderr, "Serving sheet for %s on %s\n", filename, serveAddr)
	}

	return http.ListenAndServe(serveAddr, r)
}

// sheetHandler regenerates records from the input file and renders the sheet
// into the response. Each request is one full generation run.
func sheetHandler(cmd *cobra.Command, filename string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		raw, err := readInput(filename, maxFileSizeFlag)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		gen := pipeline.New(generateOptions(cmd))

		var result *pipeline.Result
		if strings.HasSuffix(strings.ToLower(filename), ".csv") {
			result, err = gen.GenerateFromCSV(raw)
		} else {
			result, err = gen.GenerateFromText(raw)
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		renderer := sheet.NewRenderer(sheet.QRCodeEncoder{}, sheet.Options{
			QRSize:  qrSizeFlag,
			Workers: workersFlag,
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		if err := renderer.Render(w, result); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
