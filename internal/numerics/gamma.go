package numerics

import "math"

var lanczosCoefficients = [6]float64{
	76.18009172947146,
	-86.50532032941677,
	24.01409824083091,
	-1.231739572460166,
	0.1208650973866179e-2,
	-0.5395239384953e-5,
}

const (
	lanczosSeed = 1.000000000190015
	sqrt2Pi     = 2.5066282746310005
)

// LogGamma returns ln Γ(xx) for xx > 0. Non-positive input is not checked
// and yields an unspecified value.
func LogGamma(xx float64) float64 {
	x := xx
	y := xx
	tmp := x + 5.5
	tmp -= (x + 0.5) * math.Log(tmp)

	ser := lanczosSeed
	for _, c := range lanczosCoefficients {
		y++
		ser += c / y
	}

	return -tmp + math.Log(sqrt2Pi*ser/x)
}
