//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by this repository:
// - github.com/matryer/moq (go:generate mocks of consumer interfaces)
// - github.com/pressly/goose/v3/cmd/goose (ad-hoc migration authoring; runtime
//   migrations go through `studyctl migrate`)
