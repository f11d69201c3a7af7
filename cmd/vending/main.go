// Package main provides the vending CLI.
package main

import "github.com/mesh-intelligence/vending/internal/cli"

func main() {
	cli.Execute()
}
