package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btraven00/qrstack/internal/collate"
)

var (
	layoutRows  int
	layoutCols  int
	layoutCount int
)

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the cut-and-stack numbering map for a grid and item count",
	Long: `Layout prints which sequence number lands in each grid cell, page by
page, without generating any QR codes. Consecutive numbers share a grid slot
across pages: cut the printed pages, stack same-position pieces, and the
stacks concatenate to 1..N in order.

Examples:
  qrstack layout --count 10
  qrstack layout --rows 4 --cols 2 --count 25`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().IntVar(&layoutRows, "rows", 3, "grid rows per page")
	layoutCmd.Flags().IntVar(&layoutCols, "cols", 3, "grid columns per page")
	layoutCmd.Flags().IntVar(&layoutCount, "count", 0, "total item count")
	_ = layoutCmd.MarkFlagRequired("count")
}

func runLayout(cmd *cobra.Command, args []string) error {
	if layoutRows < 1 || layoutCols < 1 {
		return fmt.Errorf("grid must have at least one row and one column")
	}

	if layoutCount < 0 {
		return fmt.Errorf("count must not be negative")
	}

	geom := collate.Geometry{Rows: layoutRows, Cols: layoutCols}

	pages := geom.Pages(layoutCount)
	if pages == 0 {
		fmt.Println("0 items, 0 pages")
		return nil
	}

	fmt.Print(formatLayout(geom, layoutCount))

	return nil
}

// formatLayout renders every page's numbering grid as aligned text, with "."
// marking empty cells.
func formatLayout(geom collate.Geometry, n int) string {
	width := len(fmt.Sprint(n))

	var b strings.Builder

	for page := 0; page < geom.Pages(n); page++ {
		fmt.Fprintf(&b, "page %d:\n", page+1)

		for row := 0; row < geom.Rows; row++ {
			for col := 0; col < geom.Cols; col++ {
				if col > 0 {
					b.WriteString(" ")
				}

				num, ok := collate.NumberForCell(page, row, col, geom, n)
				if ok {
					fmt.Fprintf(&b, "%*d", width, num)
				} else {
					fmt.Fprintf(&b, "%*s", width, ".")
				}
			}

			b.WriteString("\n")
		}
	}

	return b.String()
}
