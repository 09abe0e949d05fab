package irradiance

// uniformGrid returns n evenly spaced coordinates covering [start, stop]
// inclusive of both ends (n-1 intervals). Each value is start + i*step so no
// fractional drift accumulates across the grid. n == 1 yields {start}.
func uniformGrid(start, stop Real, n int) []Real {
	out := make([]Real, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / Real(n-1)
	for i := range out {
		out[i] = start + Real(i)*step
	}
	return out
}

// receiverGrid builds the evaluation coordinates over [0, l] for one axis.
func receiverGrid(l Real, n int) []Real {
	return uniformGrid(0, l, n)
}

// sourceGrid builds the source sample coordinates for one axis: s samples
// across the rectangle's extent, centered on the placement coordinate.
// s == 1 collapses to the center point.
func sourceGrid(extent, center Real, s int) []Real {
	if s == 1 {
		return []Real{center}
	}
	return uniformGrid(center-extent/2, center+extent/2, s)
}
