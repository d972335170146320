package main

import (
	"strings"

	lev "github.com/texttheater/golang-levenshtein/levenshtein"
)

// defaultThreshold is the largest edit distance at which two column names
// are still considered the same column.
const defaultThreshold = 3

func similarity(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	return lev.DistanceForStrings(ra, rb, lev.DefaultOptions)
}

// findBestMatch scans candidates in order and returns the one with the
// lowest distance to target, provided that distance is within threshold.
// Later candidates only win on a strictly smaller distance, so ties go to
// the first candidate seen.
func findBestMatch(target string, candidates []string, threshold int) (string, bool) {
	best := ""
	bestDistance := 0
	found := false

	for _, candidate := range candidates {
		distance := similarity(target, candidate)
		if distance > threshold {
			continue
		}
		if !found || distance < bestDistance {
			best = candidate
			bestDistance = distance
			found = true
		}
	}

	return best, found
}
