//go:build debug

package usecases

// debugAssertions turns invariant breaches into panics in builds tagged "debug".
const debugAssertions = true
