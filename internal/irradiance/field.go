package irradiance

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Field is the solver output: an N×N irradiance grid over the receiver.
// Row index follows the receiver's Y axis, column index its X axis, so
// At(j, i) is the irradiance at (x[i], y[j]). Min and max are cached at
// construction so display code never rescans the data.
type Field struct {
	data     *mat.Dense
	n        int
	min, max Real
}

func newField(n int) *Field {
	return &Field{data: mat.NewDense(n, n, nil), n: n}
}

// finalize caches min/max once the accumulation buffers are settled.
func (f *Field) finalize() {
	raw := f.data.RawMatrix().Data
	f.min = floats.Min(raw)
	f.max = floats.Max(raw)
}

// N returns the grid resolution per axis.
func (f *Field) N() int { return f.n }

// At returns the cell at receiver row j (Y) and column i (X).
func (f *Field) At(j, i int) Real { return f.data.At(j, i) }

// Min returns the smallest cell value.
func (f *Field) Min() Real { return f.min }

// Max returns the largest cell value.
func (f *Field) Max() Real { return f.max }

// Mat exposes the backing matrix for consumers that reduce or render it.
// The returned matrix must be treated as read-only.
func (f *Field) Mat() *mat.Dense { return f.data }

// ArgMax returns the row/column of the first maximal cell.
func (f *Field) ArgMax() (j, i int) {
	raw := f.data.RawMatrix().Data
	k := floats.MaxIdx(raw)
	return k / f.n, k % f.n
}

// ArgMin returns the row/column of the first minimal cell.
func (f *Field) ArgMin() (j, i int) {
	raw := f.data.RawMatrix().Data
	k := floats.MinIdx(raw)
	return k / f.n, k % f.n
}
