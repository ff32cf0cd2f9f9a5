package main

import (
	"os"

	"github.com/grknsolak/it-certification-app/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
