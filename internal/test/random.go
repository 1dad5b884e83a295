package test

import (
	"math/rand"
	"strings"
)

const lowerAlnum = "abcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns n pseudo-random lower-case letters and digits.
func RandomString(n int) string {
	if n <= 0 {
		n = 1
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(lowerAlnum[rand.Intn(len(lowerAlnum))])
	}
	return b.String()
}

// RandomEmail returns a unique-enough address in the normalized form the
// sign-up flow stores.
func RandomEmail() string {
	return RandomString(6+rand.Intn(7)) + "@example.com"
}
