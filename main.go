// Package main is the entry point of the vendorrank CLI.
package main

import (
	"github.com/huangsam/vendorrank/cmd"
	"github.com/huangsam/vendorrank/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
