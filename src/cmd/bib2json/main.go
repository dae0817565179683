package main

import (
	"fmt"
	"os"

	"bib2json/src/cmd/bib2json/convertcmd"
)

var rootCmd = convertcmd.New()

func execute() error {
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
