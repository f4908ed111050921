package main

import (
	"os"

	"github.com/lessonforge/lessonforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
