package main

import (
	"os"

	"github.com/scan-io-git/mobile-audit/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
