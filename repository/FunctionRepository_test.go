package repository

import (
	"regexp"
	"testing"
)

var shareCodePattern = regexp.MustCompile(`^[A-Z]{2}\d{5}$`)

func TestGenerateRandomCodeShape(t *testing.T) {
	for i := 0; i < 20; i++ {
		code := GenerateRandomCode()
		if !shareCodePattern.MatchString(code) {
			t.Fatalf("expected share code matching %s, got %q", shareCodePattern.String(), code)
		}
	}
}
