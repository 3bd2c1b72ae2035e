package main

// This is a calculator for arithmetic expressions over IEEE-754 doubles.

import (
	"os"

	"github.com/ltungv/calc/cmd/calc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
