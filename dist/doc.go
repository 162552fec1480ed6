// Package dist implements an algebra of finite probability distributions:
// mappings from a finite outcome domain to non-negative weights summing
// to one, together with combinators that preserve that invariant under
// composition.
//
// Every distribution is created by a validated factory (New, PointMass,
// Bind, Mix, Uniform, Product, Tuple, ...) and is immutable afterwards.
// The factories check the two invariants once at construction:
//
//   - every weight is >= 0
//   - the weights sum to 1 within Tolerance
//
// and the value is trusted for its lifetime; accessors never re-validate.
//
// Weights are IEEE double-precision floats. The sum-to-one check uses the
// fixed tolerance Tolerance (1e-9); this representation is uniform across
// all combinators in the package. Bind and Tuple over large domains
// accumulate the most rounding error and are the combinators to watch in
// numerical-stability testing.
//
// All operations are pure functions over immutable values. Distributions
// are safe for concurrent read access by construction.
package dist
