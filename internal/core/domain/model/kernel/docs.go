// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validation that enforce invariants
// common to every aggregate, such as identifier validity.
package kernel
