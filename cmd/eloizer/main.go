package main

import (
	"os"

	"github.com/Inversive-Labs/eloizer/internal/app"
)

func main() {
	if err := app.BuildRoot().Execute(); err != nil {
		os.Exit(1)
	}
}
