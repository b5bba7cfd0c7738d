// Package repository holds small stateless helpers shared across handlers
// that don't warrant their own package.
package repository

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateRandomCode returns a short, human-typeable share code for a
// project (two letters followed by five digits, e.g. "AB12345").
func GenerateRandomCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	prefix := string(letters[rng.Intn(len(letters))]) + string(letters[rng.Intn(len(letters))])
	number := rng.Intn(90000) + 10000

	return fmt.Sprintf("%s%d", prefix, number)
}
