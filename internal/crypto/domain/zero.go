package domain

// Zero overwrites b with zeros. It is safe to call with a nil slice.
func Zero(b []byte) {
	clear(b)
}
