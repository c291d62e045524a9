//go:build tools
// +build tools

// Package tools documents development tool dependencies.
// These are installed globally via `go install`; only mockgen has a matching
// library dependency in go.mod (go.uber.org/mock).
package tools

// Development tools (install via `go install`):
//
// mockgen - regenerates the committed mocks under internal/mocks
//   Install: go install go.uber.org/mock/mockgen@v0.6.0
//
// Air - live reload during development
//   Install: go install github.com/air-verse/air@v1.63.0
