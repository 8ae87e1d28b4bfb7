package main

import (
	"os"

	"github.com/tupyy/scan2pdf/internal/cli"

	// register the built-in development backend; hardware backends
	// register themselves the same way from their own packages
	_ "github.com/tupyy/scan2pdf/pkg/device/fake"
)

func main() {
	os.Exit(cli.Execute())
}
