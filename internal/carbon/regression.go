package carbon

import "gonum.org/v1/gonum/stat"

// Line is a fitted y = Intercept + Slope·x.
type Line struct {
	Intercept float64 `json:"intercept" yaml:"intercept"`
	Slope     float64 `json:"slope" yaml:"slope"`
}

// At returns the line's value at x.
func (l Line) At(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// FitLine returns the ordinary least-squares line of ys on xs.
//
// With no points the zero line is returned. When xs has no spread the slope is
// undetermined; the flat line through mean(ys) is returned, which is the
// least-squares solution with an intercept.
// FitLine panics if xs and ys differ in length.
func FitLine(xs, ys []float64) Line {
	if len(xs) != len(ys) {
		panic("carbon: FitLine length mismatch")
	}
	if len(xs) == 0 {
		return Line{}
	}
	if len(xs) == 1 || stat.Variance(xs, nil) == 0 {
		return Line{Intercept: stat.Mean(ys, nil)}
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Line{Intercept: alpha, Slope: beta}
}
