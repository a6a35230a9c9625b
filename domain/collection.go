package domain

import "github.com/samber/lo"

// ConcatenateArrays joins every slice in argument order.
func ConcatenateArrays[T any](arrays ...[]T) []T {
	return lo.Flatten(arrays)
}
