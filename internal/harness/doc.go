// Package harness runs YAML-defined distribution scenarios.
//
// A scenario loads a CUE catalog, applies a pipeline of combinator
// steps (mix, restrict, tuple, product, marginals, head, tail) and
// checks assertions against the resulting distributions. Scenario
// results can additionally be snapshotted as golden files for
// regression comparison.
package harness
