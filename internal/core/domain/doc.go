// Package domain defines the core business entities for Trolly.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Item: One row of the shopping list
//   - ItemValues: A partial column set for insert or update
//   - Matcher / URI: Content URI routing for the provider surface
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
