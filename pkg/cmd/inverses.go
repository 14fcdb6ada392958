package cmd

import (
	"os"
	"strconv"

	"github.com/rluvaton/math-helper-scripts/pkg/util"
	"github.com/rluvaton/math-helper-scripts/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// inversesCmd represents the inverses command
var inversesCmd = &cobra.Command{
	Use:   "inverses [flags] [n]",
	Short: "Print the additive and multiplicative inverses of every representative.",
	Long: `Print, for every representative x of the ring of integers modulo n, its
	additive inverse -x and (for nonzero x) its multiplicative inverse 1/x.
	Representatives without an inverse are shown as "-".`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		ring := ringFromArgs(cmd, args)
		//
		summary := ring.Summary()
		log.Debugf("ring of size %d has %d units", ring.Size(), ring.Units().Count())
		//
		printer := termio.NewTablePrinter(os.Stdout, 3, uint(len(summary))+1)
		printer.AnsiEscapes(ansiEnabled(cmd))
		printer.SetRow(0, "x", "-x", "1/x")
		//
		for c := uint(0); c < 3; c++ {
			printer.SetEscape(c, 0, termio.BoldAnsiEscape())
		}
		//
		for i, s := range summary {
			printer.SetRow(uint(i+1),
				strconv.Itoa(s.Variable),
				formatInverse(s.AdditiveInverse),
				formatInverse(s.Inverse))
		}
		//
		printer.Print()
	},
}

// Show an inverse which may not exist.
func formatInverse(inv util.Option[int]) string {
	if v, ok := inv.Get(); ok {
		return strconv.Itoa(v)
	}
	//
	return "-"
}

func init() {
	rootCmd.AddCommand(inversesCmd)
	addRangeFlags(inversesCmd)
}
