// Package specfile loads distribution catalogs from CUE files.
//
// A catalog is a directory of CUE files declaring finite distributions
// under the top-level "dist" field:
//
//	dist: coin: {
//	    outcomes: ["heads", "tails"]
//	    weights: [0.5, 0.5]
//	}
//
// Outcome labels are NFC-normalized before construction so that visually
// identical labels cannot slip past the duplicate-outcome check. Every
// entry is built through the dist package's validated factory, so a
// loaded catalog only ever contains well-formed distributions; malformed
// entries surface as CompileErrors carrying the CUE source position.
package specfile
