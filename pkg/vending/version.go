// Package vending carries module-level metadata for the vending tool.
package vending

// Version is the released version of the vending CLI.
const Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/vending"
