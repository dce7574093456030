package codec

// Reset returns dst to an empty state. Call it before retrying a decode into
// a destination that a failed decode left partially populated. Types with a
// Clear method are cleared in place; anything else is set to its zero value.
func Reset[T any](dst *T) {
	if c, ok := any(dst).(interface{ Clear() }); ok {
		c.Clear()
		return
	}
	var zero T
	*dst = zero
}
