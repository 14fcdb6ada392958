package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rluvaton/math-helper-scripts/pkg/zn"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int flag, or panic if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct a ring from the command line: either a single positional count n
// (the canonical ring over 0..n-1), or an explicit --from / --to range.
func ringFromArgs(cmd *cobra.Command, args []string) *zn.Ring {
	var (
		ring *zn.Ring
		err  error
	)
	//
	switch {
	case len(args) == 1:
		var n int
		//
		if n, err = strconv.Atoi(args[0]); err == nil {
			ring, err = zn.FromCount(n)
		}
	case len(args) == 0 && cmd.Flags().Changed("from"):
		ring, err = zn.FromRange(GetInt(cmd, "from"), GetInt(cmd, "to"))
	default:
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Handle error
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return ring
}

// Parse a positional uint64 argument.
func parseUint(arg string) uint64 {
	n, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return n
}

// Determine whether ANSI escapes should be used: never when disabled
// explicitly, otherwise only when stdout is an actual terminal.
func ansiEnabled(cmd *cobra.Command) bool {
	if GetFlag(cmd, "no-ansi") {
		return false
	}
	//
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// addRangeFlags registers the --from / --to pair shared by the table-oriented
// commands.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("from", 0, "lower bound (inclusive) of the representative range")
	cmd.Flags().Int("to", 0, "upper bound (inclusive) of the representative range")
}
