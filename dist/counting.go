package dist

// CardinalityBounds bounds the size of an outcome set S from per-element
// and total mass bounds (the Wolfowitz counting argument).
//
// Given perLow ≤ weight(x) ≤ perHigh for every x ∈ S and
// sumLow ≤ Σ_{x∈S} weight(x) ≤ sumHigh, the sum is sandwiched between
// |S|·perLow and |S|·perHigh, so
//
//	sumLow/perHigh ≤ |S| ≤ sumHigh/perLow
//
// The argument is pure arithmetic: it consumes only the bounds, not the
// distribution, and is typically applied to sets of outcomes of
// Tuple(p, k). Fails with ErrCodeOutOfRange unless perLow and perHigh are
// strictly positive.
func CardinalityBounds(perLow, perHigh, sumLow, sumHigh float64) (lower, upper float64, err error) {
	const op = "dist.CardinalityBounds"
	if perLow <= 0 {
		return 0, 0, newOutOfRangeError(op, "per-element lower bound %v is not positive", perLow)
	}
	if perHigh <= 0 {
		return 0, 0, newOutOfRangeError(op, "per-element upper bound %v is not positive", perHigh)
	}
	return sumLow / perHigh, sumHigh / perLow, nil
}
