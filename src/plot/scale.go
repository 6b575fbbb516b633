package plot

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// LinearScale maps Domain onto Range linearly. Domain may be inverted.
type LinearScale struct {
	Domain [2]float64
	Range  [2]float64
}

// Map converts a data value to a pixel position. A zero-width domain maps
// everything to the middle of the range.
func (s LinearScale) Map(v float64) float64 {
	d0, d1 := s.Domain[0], s.Domain[1]
	r0, r1 := s.Range[0], s.Range[1]
	if d1 == d0 {
		return (r0 + r1) / 2
	}
	return r0 + (v-d0)/(d1-d0)*(r1-r0)
}

// Invert converts a pixel position back to a data value.
func (s LinearScale) Invert(px float64) float64 {
	d0, d1 := s.Domain[0], s.Domain[1]
	r0, r1 := s.Range[0], s.Range[1]
	if r1 == r0 {
		return (d0 + d1) / 2
	}
	return d0 + (px-r0)/(r1-r0)*(d1-d0)
}

// Ticks returns roughly n evenly spaced ticks on 1/2/5 steps that fall inside
// the domain, in ascending value order.
func (s LinearScale) Ticks(n int) []chart.Tick {
	lo, hi := s.Domain[0], s.Domain[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if n < 1 || math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if hi == lo {
		return []chart.Tick{{Value: lo, Label: formatTick(lo)}}
	}
	step := tickStep(hi-lo, n)
	start := math.Ceil(lo/step) * step
	var ticks []chart.Tick
	for i := 0; ; i++ {
		v := round6(start + float64(i)*step)
		if v > hi+step*1e-9 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if i > 4*n+4 {
			break
		}
	}
	return ticks
}

// tickStep picks a 1, 2, 5 x 10^k increment giving about n intervals over span.
func tickStep(span float64, n int) float64 {
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	e := raw / mag
	switch {
	case e >= math.Sqrt(50):
		return 10 * mag
	case e >= math.Sqrt(10):
		return 5 * mag
	case e >= math.Sqrt(2):
		return 2 * mag
	default:
		return mag
	}
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

func formatTick(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
