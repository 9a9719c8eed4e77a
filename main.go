package main

import (
	"os"

	"github.com/abhisek/quizgame/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
