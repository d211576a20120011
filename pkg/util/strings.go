package util

import (
	"fmt"
	"strconv"
	"strings"
)

// DigitsOnly strips every non-digit character from s.
// Attendance figures arrive with thousands separators and footnote
// markers ("95,000*") which must be removed before numeric conversion.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GetAsString converts various types to string
func GetAsString(s any) (string, error) {
	if s == nil {
		return "", fmt.Errorf("cannot convert nil to string")
	}

	switch v := s.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// GetAsInteger converts various types to integer
// If s is an integer, return it
// If s is a string that represents an integer, convert it to an integer and return it
// If s is any other type, return an error
func GetAsInteger(s any) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("cannot convert nil to integer")
	}

	switch v := s.(type) {
	case int:
		return v, nil
	case int64:
		if v > 2147483647 || v < -2147483648 {
			return 0, fmt.Errorf("int64 value %d is out of int range", v)
		}
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("float64 value %f is not a whole number", v)
		}
		return int(v), nil
	case string:
		result, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("cannot convert string '%s' to integer: %w", v, err)
		}
		return result, nil
	default:
		return 0, fmt.Errorf("cannot convert type %T to integer", s)
	}
}

// LevenshteinDistance calculates the Levenshtein distance between two strings
func LevenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}

	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}

			matrix[i][j] = minOfThree(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

func minOfThree(a, b, c int) int {
	if a < b && a < c {
		return a
	}
	if b < c {
		return b
	}
	return c
}

// FuzzyMatchScore returns a similarity score between 0.0 and 1.0
// where 1.0 is a perfect match and 0.0 is completely different
func FuzzyMatchScore(str1, str2 string) float64 {
	s1 := strings.ToLower(strings.TrimSpace(str1))
	s2 := strings.ToLower(strings.TrimSpace(str2))

	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	if maxLen == 0 {
		return 1.0 // Both strings are empty
	}

	distance := LevenshteinDistance(s1, s2)
	return 1.0 - (float64(distance) / float64(maxLen))
}
