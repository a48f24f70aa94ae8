package kernel

// Float is the constraint for kernels with arithmetic semantics.
type Float interface {
	~float32 | ~float64
}

// VecAdd computes out[i] = a[i] + b[i] over n strided elements.
// out may alias a or b when its offset and stride match the aliased operand.
func VecAdd[T Float](a []T, ao, as int, b []T, bo, bs int, out []T, oo, os int, n int) {
	for i := 0; i < n; i++ {
		out[oo] = a[ao] + b[bo]
		ao += as
		bo += bs
		oo += os
	}
}

// VecSub computes out[i] = a[i] - b[i] over n strided elements.
func VecSub[T Float](a []T, ao, as int, b []T, bo, bs int, out []T, oo, os int, n int) {
	for i := 0; i < n; i++ {
		out[oo] = a[ao] - b[bo]
		ao += as
		bo += bs
		oo += os
	}
}

// VecMul computes out[i] = a[i] * b[i] over n strided elements.
func VecMul[T Float](a []T, ao, as int, b []T, bo, bs int, out []T, oo, os int, n int) {
	for i := 0; i < n; i++ {
		out[oo] = a[ao] * b[bo]
		ao += as
		bo += bs
		oo += os
	}
}

// VecDiv computes out[i] = a[i] / b[i] over n strided elements.
func VecDiv[T Float](a []T, ao, as int, b []T, bo, bs int, out []T, oo, os int, n int) {
	for i := 0; i < n; i++ {
		out[oo] = a[ao] / b[bo]
		ao += as
		bo += bs
		oo += os
	}
}

// VecScalarMul computes out[i] = a[i] * s. Safe for out aliasing a.
func VecScalarMul[T Float](a []T, ao, as int, s T, out []T, oo, os int, n int) {
	for i := 0; i < n; i++ {
		out[oo] = a[ao] * s
		ao += as
		oo += os
	}
}

// VecScalarAdd computes out[i] = a[i] + s. Safe for out aliasing a.
func VecScalarAdd[T Float](a []T, ao, as int, s T, out []T, oo, os int, n int) {
	for i := 0; i < n; i++ {
		out[oo] = a[ao] + s
		ao += as
		oo += os
	}
}

// VecScaledSum computes out[i] = sa*a[i] + sb*b[i]. Safe for out aliasing
// either operand at matching offset and stride.
func VecScaledSum[T Float](a []T, ao, as int, sa T, b []T, bo, bs int, sb T, out []T, oo, os int, n int) {
	for i := 0; i < n; i++ {
		out[oo] = sa*a[ao] + sb*b[bo]
		ao += as
		bo += bs
		oo += os
	}
}

// VecRamp fills n strided elements with start, start+step, start+2*step, ...
func VecRamp[T Float](start, step T, out []T, oo, os int, n int) {
	v := start
	for i := 0; i < n; i++ {
		out[oo] = v
		v += step
		oo += os
	}
}

// VecMean returns the arithmetic mean of n strided elements.
func VecMean[T Float](a []T, ao, as int, n int) T {
	var sum T
	for i := 0; i < n; i++ {
		sum += a[ao]
		ao += as
	}
	return sum / T(n)
}

// VecMeanSquare returns the mean of squared elements.
func VecMeanSquare[T Float](a []T, ao, as int, n int) T {
	var sum T
	for i := 0; i < n; i++ {
		sum += a[ao] * a[ao]
		ao += as
	}
	return sum / T(n)
}

// VecMin returns the minimum of n strided elements. n must be > 0.
func VecMin[T Float](a []T, ao, as int, n int) T {
	m := a[ao]
	ao += as
	for i := 1; i < n; i++ {
		if a[ao] < m {
			m = a[ao]
		}
		ao += as
	}
	return m
}

// VecMax returns the maximum of n strided elements. n must be > 0.
func VecMax[T Float](a []T, ao, as int, n int) T {
	m := a[ao]
	ao += as
	for i := 1; i < n; i++ {
		if a[ao] > m {
			m = a[ao]
		}
		ao += as
	}
	return m
}

// VecRunningSum computes scaled inclusive prefix sums:
//
//	out[k] = scale * (a[0] + a[1] + ... + a[k])   for k in [1, n)
//
// Position 0 is never written; the first element is not a partial-sum
// boundary of its own. Higher layers that need out[0] = a[0] must fix it up
// themselves. Safe for out aliasing a: out[k] is written only after a[k]
// has entered the accumulator.
func VecRunningSum[T Float](a []T, ao, as int, scale T, out []T, oo, os int, n int) {
	if n < 2 {
		return
	}
	acc := a[ao]
	ao += as
	oo += os
	for k := 1; k < n; k++ {
		acc += a[ao]
		out[oo] = scale * acc
		ao += as
		oo += os
	}
}

// VecConvolve computes a valid-domain 1-D convolution:
//
//	out[i] = sum over p in [0, kn) of in[i+p] * k[p]
//
// The caller sizes out so that every window has full overlap
// (outN = inputCount - kn + 1 for unit logical indexing).
func VecConvolve[T Float](in []T, io, is int, k []T, ko, ks int, out []T, oo, os int, outN, kn int) {
	for i := 0; i < outN; i++ {
		var sum T
		ip := io + i*is
		kp := ko
		for p := 0; p < kn; p++ {
			sum += in[ip] * k[kp]
			ip += is
			kp += ks
		}
		out[oo] = sum
		oo += os
	}
}
