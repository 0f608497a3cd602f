package auv

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Rot2D returns the 2D rotation matrix of angle θ, which maps body frame vectors to the world frame.
func Rot2D(θ float64) *mat.Dense {
	s, c := math.Sincos(θ)
	return mat.NewDense(2, 2, []float64{c, -s, s, c})
}

// ThrusterFrame returns the 2x4 matrix which maps the thrust of each thruster to the body frame force.
// Column j is the unit direction of thruster j, as per ThrusterSignPattern.
func ThrusterFrame(α float64) *mat.Dense {
	s, c := math.Sincos(α)
	R := mat.NewDense(2, ThrusterCount, nil)
	for j, signs := range ThrusterSignPattern {
		R.Set(0, j, signs[0]*c)
		R.Set(1, j, signs[1]*s)
	}
	return R
}

// MxV multiplies a matrix with a vector. Note that there is no dimension check!
func MxV(m mat.Matrix, v []float64) []float64 {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(len(v), v))
	return rVec.RawVector().Data
}
