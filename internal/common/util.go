package common

// WipeByteArray overwrites the contents of b with zeros. It is used for
// password buffers read from the terminal once their value has been copied
// into the registration.
//
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
