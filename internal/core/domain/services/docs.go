// Package services provides domain services for rules that span the order
// aggregate and the read models of other services (users, cars).
//
// The package includes:
//   - AvailabilityPolicy: decides whether a car is in use at a given time
//   - EligibilityPolicy: decides whether a user may rent and a car may be rented
//   - BillingCalculator: turns a concluded order into a bill
package services
