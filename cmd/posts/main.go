package main

import (
	"os"

	"github.com/deppfellow/go-posts/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
