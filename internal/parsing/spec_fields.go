// Package parsing provides normalization and numeric extraction for the
// free-text specification fields found in tenders and catalog products.
package parsing

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)
	leadingNumber   = regexp.MustCompile(`(\d+\.?\d*)`)
	coreCount       = regexp.MustCompile(`(?i)(\d+)C?\s*x`)
	crossSection    = regexp.MustCompile(`x\s*(\d+\.?\d*)`)
	standardNumber  = regexp.MustCompile(`\d+`)
)

// NormalizeSpec lowercases a spec string and strips every character that is
// not an ASCII letter or digit. All exact-string comparisons in the matcher
// run on this form, so "IS 7098" and "is-7098" compare equal.
func NormalizeSpec(s string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(s), "")
}

// ExtractVoltage returns the leading numeric value from a voltage string,
// e.g. "11kV" -> 11. Returns 0 when no numeric value is present.
func ExtractVoltage(voltage string) float64 {
	m := leadingNumber.FindStringSubmatch(voltage)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// ExtractCores returns the core count from a size string such as
// "3C x 185 sq.mm". Defaults to 1 when the pattern is absent.
func ExtractCores(size string) int {
	m := coreCount.FindStringSubmatch(size)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}

// ExtractCrossSection returns the cross-section area following the "x" in a
// size string, e.g. "3C x 185 sq.mm" -> 185. Returns 0 when absent.
func ExtractCrossSection(size string) float64 {
	m := crossSection.FindStringSubmatch(size)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// ExtractStandardCode returns the first embedded number of a standard code,
// e.g. "IEC 60502-2" -> "60502". Empty when the code carries no number.
func ExtractStandardCode(standard string) string {
	return standardNumber.FindString(standard)
}

// StandardFamily reports whether a standard string belongs to a known family
// prefix. Matches the raw string, not the normalized form, since family
// prefixes are conventionally uppercase ("IS 7098", "IEC 60502-2").
func StandardFamily(standard, family string) bool {
	return strings.Contains(standard, family)
}
