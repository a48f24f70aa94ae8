package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	blasgonum "gonum.org/v1/gonum/blas/gonum"
)

var blasImpl blasgonum.Implementation

// Gemm performs the row-major general matrix multiply
//
//	C = alpha*A*B + beta*C
//
// where A is m×k with leading dimension lda, B is k×n with leading
// dimension ldb, and C is m×n with leading dimension ldc. The slices start
// at the first element of each matrix (callers fold offsets in). C must not
// alias A or B.
//
// float32 and float64 dispatch to gonum's Sgemm and Dgemm.
func Gemm[T Float](m, n, k int, alpha T, a []T, lda int, b []T, ldb int, beta T, c []T, ldc int) {
	switch av := any(a).(type) {
	case []float32:
		blasImpl.Sgemm(blas.NoTrans, blas.NoTrans, m, n, k,
			any(alpha).(float32), av, lda,
			any(b).([]float32), ldb,
			any(beta).(float32), any(c).([]float32), ldc)
	case []float64:
		blasImpl.Dgemm(blas.NoTrans, blas.NoTrans, m, n, k,
			any(alpha).(float64), av, lda,
			any(b).([]float64), ldb,
			any(beta).(float64), any(c).([]float64), ldc)
	default:
		panic(fmt.Sprintf("gemm: unsupported element type %T", a))
	}
}
