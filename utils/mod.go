package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// CountFunc counts the elements satisfying f.
func CountFunc[T any](slice []T, f func(T) bool) int {
	n := 0
	for _, v := range slice {
		if f(v) {
			n++
		}
	}
	return n
}

// Filter returns the elements satisfying f, in order.
func Filter[T any](slice []T, f func(T) bool) []T {
	var out []T
	for _, v := range slice {
		if f(v) {
			out = append(out, v)
		}
	}
	return out
}
