package utils

// Ptr returns a pointer to the provided value v.
// This is useful for creating pointers to literals or temporary values.
func Ptr[T any](v T) *T {
	return &v
}

// Coalesce returns override when it is set and current otherwise.
func Coalesce[T any](current, override *T) *T {
	if override != nil {
		return override
	}

	return current
}

// Assign copies *value into dst when value is set.
func Assign[T any](dst, value *T) {
	if value != nil {
		*dst = *value
	}
}
