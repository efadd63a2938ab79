// Package dentalcase contains the Case aggregate and its value objects.
//
// A Case is a unit of dental laboratory work tracked through production for
// a single tenant (lab). The aggregate owns the case lifecycle: intake
// validation, case number identity, the status state machine, technician
// assignment, the quality review transitions, and the soft-delete tombstone.
//
// Key invariants:
//   - status is always a member of the state machine's state set, and every
//     status change goes through the transition table
//   - delivered and cancelled are terminal: a case in a terminal status never
//     mutates again except for soft deletion
//   - tooth numbers are non-empty, unique, each in [1,32], sorted ascending
//   - the case number is immutable once assigned
//
// All value objects validate in their constructors; zero values fail
// validation through the constructor guard pattern.
package dentalcase
