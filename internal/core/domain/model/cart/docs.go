// Package cart implements the ShoppingCart aggregate.
//
// Key business rules:
//   - A cart is created together with its first line
//   - Adding a baked good that is already in the cart sums the quantities
//   - Setting a quantity to 0 removes the line
//   - Decreasing by a delta is clamped at 0; a line at 0 is removed by a policy
//   - An order can only be created from a cart with at least one positive line
//   - Removing the last line or creating an order leads to the cart being deleted
package cart
