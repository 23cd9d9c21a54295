// Package kernel provides core domain primitives shared by the order management model.
//
// The package includes:
//   - ID: A numeric identity for orders, users, cars and bills
//   - Clock: The time source the lifecycle rules read "now" from
//
// Orders reference users, cars and bills owned by other services by ID only,
// so ID is the one primitive every aggregate in this service shares.
package kernel
