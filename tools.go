//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// These imports are not used at runtime. They pin the Go-based tools run by
// `go generate` (mockgen) in go.mod, so regenerating mocks works on a fresh
// checkout without a "missing go.sum entry" error.
package tx_lab

import (
	_ "go.uber.org/mock/mockgen"
)
