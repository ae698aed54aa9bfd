package main

import (
	"os"

	"github.com/ArifBabayev05/cvibes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
