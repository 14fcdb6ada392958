package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rluvaton/math-helper-scripts/pkg/field"
	"github.com/rluvaton/math-helper-scripts/pkg/zn"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "Evaluate a chain of field operations.",
	Long: `Evaluate a left-to-right chain of field operations, e.g.

	math-helper eval --mod 5 "2 / 3 - 1"

	Supported operators are + - * /.  Subtraction adds the additive inverse;
	division multiplies by the multiplicative inverse, and fails for divisors
	with no inverse.  By default arithmetic happens in the ring of integers
	modulo --mod; with --babybear it happens in the BabyBear prime field.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		tokens := strings.Fields(strings.Join(args, " "))
		if len(tokens) == 0 || len(tokens)%2 == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		element := newElement(cmd, parseOperand(tokens[0]))
		//
		for i := 1; i < len(tokens); i += 2 {
			applyOperation(element, tokens[i], parseOperand(tokens[i+1]))
			log.Debugf("applied %s %s: value now %d", tokens[i], tokens[i+1], element.Value())
		}
		// Surface the first failed operation, if any.
		if err := element.Err(); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(element.Value())
	},
}

// Construct the starting element over the requested field.
func newElement(cmd *cobra.Command, value int) *field.Element {
	var f field.Field
	//
	if GetFlag(cmd, "babybear") {
		f = field.BabyBear{}
	} else {
		ring, err := zn.FromCount(GetInt(cmd, "mod"))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		f = ring.AsField()
	}
	//
	element, err := field.NewElement(f, value)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return element
}

func applyOperation(element *field.Element, op string, x int) {
	switch op {
	case "+":
		element.Sum(x)
	case "-":
		element.Subtract(x)
	case "*", "x":
		element.Multiply(x)
	case "/":
		element.Divide(x)
	default:
		fmt.Printf("unknown operator \"%s\"\n", op)
		os.Exit(1)
	}
}

func parseOperand(token string) int {
	v, err := strconv.Atoi(token)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return v
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Int("mod", 7, "modulus of the ring to evaluate in")
	evalCmd.Flags().Bool("babybear", false, "evaluate in the BabyBear prime field")
}
