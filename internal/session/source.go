package session

import (
	"crypto/rand"
	"math/big"
)

// Source generates anti-forgery state values. A fresh value is produced per
// session; a state shared across sessions would match any live session and
// void the CSRF protection of the round trip.
type Source struct{}

func (s Source) randString(n int) string {
	const letters = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-"

	ret := make([]byte, n)
	for i := range n {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		ret[i] = letters[num.Int64()]
	}

	return string(ret)
}

func (s Source) State() string {
	return s.randString(64)
}
