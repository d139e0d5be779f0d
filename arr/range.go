package arr

import "iter"

// Number is the set of element types accepted by [Range].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Range returns a lazy sequence starting at start and advancing by step.
// With a positive step it yields values strictly less than end; with a
// negative step it counts down, yielding values strictly greater than end.
// The sequence is restartable and always finite: it also stops if adding step
// would overflow or no longer changes the value.
//
// Returns [ErrZeroStep] when step == 0 and [ErrNonFiniteRange] when any
// argument is NaN or infinite.
//
//	seq, _ := arr.Range(0, 10, 2)
//	for n := range seq { ... } // 0 2 4 6 8
func Range[N Number](start, end, step N) (iter.Seq[N], error) {
	if !finite(start) || !finite(end) || !finite(step) {
		return nil, ErrNonFiniteRange
	}
	if step == 0 {
		return nil, ErrZeroStep
	}
	up := step > 0
	return func(yield func(N) bool) {
		for v := start; up && v < end || !up && v > end; {
			if !yield(v) {
				return
			}
			next := v + step
			if up != (next > v) {
				return
			}
			v = next
		}
	}, nil
}

// finite is false for NaN and ±Inf; x-x is NaN for both.
func finite[N Number](x N) bool {
	return x-x == 0
}
