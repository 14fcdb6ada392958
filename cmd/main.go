package main

import (
	"github.com/rluvaton/math-helper-scripts/pkg/cmd"
)

func main() {
	cmd.Execute()
}
