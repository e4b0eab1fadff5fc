package main

import (
	"os"

	"github.com/cwbudde/go-simplelang/cmd/simplelang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
