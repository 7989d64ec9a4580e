package util

import (
	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Abs[A constraints.Float | constraints.Signed](v A) A {
	if v < 0 {
		return -v
	}
	return v
}

func Clamp[A constraints.Float | constraints.Signed](v, lo, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mean returns 0 on an empty slice so callers never divide by zero.
func Mean[A constraints.Float](nums []A) A {
	if len(nums) == 0 {
		return 0
	}
	var total A
	for _, v := range nums {
		total += v
	}
	return total / A(len(nums))
}

// MeanAbs is Mean over absolute values.
func MeanAbs[A constraints.Float](nums []A) A {
	if len(nums) == 0 {
		return 0
	}
	var total A
	for _, v := range nums {
		total += Abs(v)
	}
	return total / A(len(nums))
}
