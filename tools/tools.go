//go:build tools
// +build tools

package tools

// Linters run over the module in CI.
import (
	_ "github.com/mgechev/revive"
	_ "honnef.co/go/tools/cmd/staticcheck"
)
