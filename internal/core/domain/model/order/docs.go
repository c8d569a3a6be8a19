// Package order contains the Order aggregate and its value objects.
// It implements the order lifecycle state machine: a closed status enum
// with an explicit transition table, the orthogonal payment status, the
// write-once complaint rule, and the weighing step that couples pricing to
// the ReceivedByFacility transition.
//
// Transitions that notify the customer return a Notice value; the
// application layer emits it after the mutation commits, keeping the
// fire-and-forget side effect visible and testable instead of implicit.
package order
