// internal/platform/ui/symbols.go
package ui

// SymbolMore trails sample lists that do not show every member.
const SymbolMore = "…"
