// Package provider defines the AI provider interface and implementations.
package provider

import "github.com/glottolabs/lingoswap"

// CompletionProvider is the interface for AI completion backends.
// This is an alias to the main package interface for convenience.
type CompletionProvider = lingoswap.CompletionProvider

// CompletionRequest is an alias to the main package type.
type CompletionRequest = lingoswap.CompletionRequest
