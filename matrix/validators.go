// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a
// typed-nil *Dense behind the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateDistance checks the structural contract of a distance matrix:
// square, zero diagonal (within eps), no NaN, no negative entries. +Inf
// entries are allowed and denote unreachable pairs.
//
// Validation is staged so the first violated rule is reported:
// shape → diagonal → NaN → negative.
//
// Complexity: O(n²).
func ValidateDistance(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return err
		}
		if math.Abs(v) > eps || math.IsNaN(v) {
			return validatorErrorf("ValidateDistance", fmt.Errorf("d[%d][%d]=%g: %w", i, i, v, ErrNonZeroDiagonal))
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if math.IsNaN(v) {
				return validatorErrorf("ValidateDistance", fmt.Errorf("d[%d][%d]: %w", i, j, ErrNaN))
			}
			if v < 0 {
				return validatorErrorf("ValidateDistance", fmt.Errorf("d[%d][%d]=%g: %w", i, j, v, ErrNegative))
			}
		}
	}

	return nil
}

// MaxAsymmetry returns max_{i<j} |A[i,j] − A[j,i]| over pairs where both
// entries are finite, and the number of pairs where exactly one of the two
// is infinite.
//
// Complexity: O(n²).
func MaxAsymmetry(m Matrix) (maxDiff float64, mixedInf int, err error) {
	if err = ValidateSquare(m); err != nil {
		return 0, 0, err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aij, _ := m.At(i, j)
			aji, _ := m.At(j, i)
			infA, infB := math.IsInf(aij, 0), math.IsInf(aji, 0)
			switch {
			case infA && infB:
			case infA || infB:
				mixedInf++
			default:
				if d := math.Abs(aij - aji); d > maxDiff {
					maxDiff = d
				}
			}
		}
	}

	return maxDiff, mixedInf, nil
}
