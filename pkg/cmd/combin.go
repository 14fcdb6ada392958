package cmd

import (
	"fmt"
	"os"

	"github.com/rluvaton/math-helper-scripts/pkg/combin"
	"github.com/spf13/cobra"
)

// combinCmd represents the combin command
var combinCmd = &cobra.Command{
	Use:   "combin",
	Short: "Elementary counting formulas.",
	Long: `Elementary counting formulas: factorials, permutations, combinations and
	arrangements with repetition.  Results are exact up to 64 bits; larger
	arguments overflow silently.`,
}

var factorialCmd = &cobra.Command{
	Use:   "factorial n",
	Short: "Compute n!.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(combin.Factorial(parseUint(args[0])))
	},
}

var permutationsCmd = &cobra.Command{
	Use:   "permutations n [k]",
	Short: "Count the orderings of n items, or of k items selected out of n.",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			fmt.Println(combin.Permutations(parseUint(args[0])))
			return
		}
		//
		result, err := combin.PartialPermutations(parseUint(args[0]), parseUint(args[1]))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(result)
	},
}

var chooseCmd = &cobra.Command{
	Use:   "choose n k",
	Short: "Compute the binomial coefficient n choose k.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		result, err := combin.Combinations(parseUint(args[0]), parseUint(args[1]))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(result)
	},
}

var arrangementsCmd = &cobra.Command{
	Use:   "arrangements n k",
	Short: "Count the sequences of length k over n symbols, i.e. n^k.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(combin.ArrangementsWithRepetition(parseUint(args[0]), parseUint(args[1])))
	},
}

func init() {
	rootCmd.AddCommand(combinCmd)
	combinCmd.AddCommand(factorialCmd)
	combinCmd.AddCommand(permutationsCmd)
	combinCmd.AddCommand(chooseCmd)
	combinCmd.AddCommand(arrangementsCmd)
}
