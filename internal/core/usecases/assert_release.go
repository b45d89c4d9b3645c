//go:build !debug

package usecases

const debugAssertions = false
