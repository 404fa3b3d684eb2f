// Package main is the entry point for the facilityctl binary.
package main

import (
	"os"

	"facility-pipeline/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
