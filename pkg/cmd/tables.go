package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rluvaton/math-helper-scripts/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tablesCmd represents the tables command
var tablesCmd = &cobra.Command{
	Use:   "tables [flags] [n]",
	Short: "Print the operation tables of the ring of integers modulo n.",
	Long: `Print the addition and/or multiplication table of the ring of integers
	modulo n.  The ring is given either as a single count n (the canonical ring
	over 0..n-1), or as an inclusive range via --from / --to.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		showAdd := GetFlag(cmd, "add")
		showMul := GetFlag(cmd, "mul")
		// Default to showing both
		if !showAdd && !showMul {
			showAdd = true
			showMul = true
		}
		//
		start := time.Now()
		ring := ringFromArgs(cmd, args)
		log.Debugf("constructed ring of size %d in %s", ring.Size(), time.Since(start))
		//
		ansi := ansiEnabled(cmd)
		//
		if showAdd {
			fmt.Println("Addition:")
			printOperationTable(ring.Representatives(), ring.AdditionTable(), "+", 0, termio.TERM_GREEN, ansi)
		}
		//
		if showMul {
			if showAdd {
				fmt.Println()
			}
			//
			fmt.Println("Multiplication:")
			printOperationTable(ring.Representatives(), ring.MultiplicationTable(), "*", 1, termio.TERM_CYAN, ansi)
		}
	},
}

// Render one operation table, with representatives as bold headers along both
// axes and every cell holding the identity highlighted.
func printOperationTable(reps []int, table [][]int, symbol string, identity int, colour uint, ansi bool) {
	var (
		n         = uint(len(reps))
		printer   = termio.NewTablePrinter(os.Stdout, n+1, n+1)
		bold      = termio.BoldAnsiEscape()
		highlight = termio.NewAnsiEscape().FgColour(colour)
	)
	//
	printer.AnsiEscapes(ansi)
	printer.Set(0, 0, symbol)
	printer.SetEscape(0, 0, bold)
	// Header row and column
	for i, x := range reps {
		printer.Set(uint(i+1), 0, strconv.Itoa(x))
		printer.SetEscape(uint(i+1), 0, bold)
		printer.Set(0, uint(i+1), strconv.Itoa(x))
		printer.SetEscape(0, uint(i+1), bold)
	}
	// Body
	for i, row := range table {
		for j, v := range row {
			printer.Set(uint(j+1), uint(i+1), strconv.Itoa(v))
			//
			if v == identity {
				printer.SetEscape(uint(j+1), uint(i+1), highlight)
			}
		}
	}
	//
	printer.Print()
}

func init() {
	rootCmd.AddCommand(tablesCmd)
	tablesCmd.Flags().Bool("add", false, "show the addition table only")
	tablesCmd.Flags().Bool("mul", false, "show the multiplication table only")
	addRangeFlags(tablesCmd)
}
