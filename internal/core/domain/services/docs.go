// Package services contains stateless domain services that coordinate
// multiple aggregates or value objects. The assignment scorer ranks eligible
// technician candidates for a case and writes the winner onto the aggregate.
package services
