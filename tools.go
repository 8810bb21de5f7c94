//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through go:generate directives in contract/, so it is
// pinned here to keep go.mod / go.sum in sync on a fresh checkout.
package chat_relay

import (
	_ "go.uber.org/mock/mockgen"
)
