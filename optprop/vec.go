package optprop

import (
	"gonum.org/v1/gonum/mat"
)

// Vec copies a band sequence into a new vector. Writes to the vector do not
// reach v.
func Vec(v []float64) *mat.VecDense {
	if len(v) == 0 {
		// mat.NewVecDense panics on zero length
		return &mat.VecDense{}
	}
	data := make([]float64, len(v))
	copy(data, v)
	return mat.NewVecDense(len(data), data)
}
