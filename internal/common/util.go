package common

// WipeByteArray overwrites the contents of b with zeros. Used for password
// buffers read from the terminal. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerValue formats token for the Authorization header. Empty token gives "".
func BearerValue(token string) string {
	if token == "" {
		return ""
	}
	return BearerPrefix + token
}
