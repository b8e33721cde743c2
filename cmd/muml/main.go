package main

import (
	"os"

	"github.com/msto63/mUML/cmd/muml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
