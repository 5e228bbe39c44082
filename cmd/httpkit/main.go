package main

import (
	"os"

	"github.com/kbukum/httpkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
