// Package order provides the rental order aggregate and its lifecycle.
//
// The package includes:
//   - Order: The aggregate root holding who rents which car, when, and the resulting bill
//   - Status: The derived lifecycle state (Open, Canceled, Finished)
//
// Key business rules:
//   - An order is opened either immediately (StartOrder) or as a reservation with a
//     future start and a requested end (NewReservation)
//   - An open order whose start is still in the future is closed by cancelling it,
//     which clears both dates
//   - An open order that has started is closed by concluding it (end = now) and
//     attaching the bill produced for the rental
//   - Canceled and Finished are terminal: no transition leaves them
//
// Transitions never mutate the receiver. Each one returns an updated copy, so a
// handler that fails halfway still holds the order exactly as it was loaded.
package order
