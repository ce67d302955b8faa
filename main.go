package main

import (
	"os"

	"github.com/abhisek/gitdojo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
