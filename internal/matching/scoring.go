// Package matching scores catalog products against tender requirement specs.
package matching

import (
	"math"
	"strings"

	"github.com/arvind/rfp-responder/internal/parsing"
)

// Attribute weights. Together they define the maximum achievable score when
// every attribute is present on both sides.
const (
	voltageWeight    = 20.0
	conductorWeight  = 15.0
	insulationWeight = 20.0
	sizeWeight       = 25.0
	armoringWeight   = 10.0
	standardWeight   = 10.0
)

// acceptThreshold is the raw fraction at or above which a fuzzy attribute
// counts as matched rather than a gap.
const acceptThreshold = 0.8

// matchVoltage compares the numeric voltage values of both strings and
// returns a raw fraction of the voltage weight.
func matchVoltage(required, offered string) float64 {
	reqV := parsing.ExtractVoltage(required)
	offV := parsing.ExtractVoltage(offered)

	switch {
	case reqV == offV:
		return 1.0
	case math.Abs(reqV-offV) <= 1: // within 1kV
		return 0.9
	case math.Abs(reqV-offV) <= 5: // within 5kV
		return 0.7
	default:
		return 0.3
	}
}

// matchConductor is binary: case- and punctuation-insensitive equality on
// the material name.
func matchConductor(required, offered string) bool {
	return parsing.NormalizeSpec(required) == parsing.NormalizeSpec(offered)
}

// matchInsulation returns 1.0 on normalized equality or a shared insulation
// family, else a below-threshold 0.4.
func matchInsulation(required, offered string) float64 {
	reqNorm := parsing.NormalizeSpec(required)
	offNorm := parsing.NormalizeSpec(offered)

	if reqNorm == offNorm {
		return 1.0
	}
	for _, family := range []string{"xlpe", "pvc", "lszh"} {
		if containsBoth(reqNorm, offNorm, family) {
			return 1.0
		}
	}
	return 0.4
}

// matchSize compares core count and cross-section, each worth half the size
// weight. Exact normalized equality short-circuits to 1.0.
func matchSize(required, offered string) float64 {
	if parsing.NormalizeSpec(required) == parsing.NormalizeSpec(offered) {
		return 1.0
	}

	score := 0.0
	if parsing.ExtractCores(required) == parsing.ExtractCores(offered) {
		score += 0.5
	}

	reqCS := parsing.ExtractCrossSection(required)
	offCS := parsing.ExtractCrossSection(offered)
	switch {
	case reqCS == offCS:
		score += 0.5
	case math.Abs(reqCS-offCS) <= 10:
		score += 0.4
	case math.Abs(reqCS-offCS) <= 50:
		score += 0.2
	}

	return score
}

// matchArmoring is binary: normalized equality, a shared SWA/AWA marker, or
// both sides describing an unarmoured cable.
func matchArmoring(required, offered string) bool {
	reqNorm := parsing.NormalizeSpec(required)
	offNorm := parsing.NormalizeSpec(offered)

	if reqNorm == offNorm {
		return true
	}
	if containsBoth(reqNorm, offNorm, "swa") || containsBoth(reqNorm, offNorm, "awa") {
		return true
	}
	return isUnarmoured(reqNorm) && isUnarmoured(offNorm)
}

// matchStandard is binary: normalized equality, or same family prefix with
// the same embedded numeric code.
func matchStandard(required, offered string) bool {
	if parsing.NormalizeSpec(required) == parsing.NormalizeSpec(offered) {
		return true
	}
	for _, family := range []string{"IS", "IEC"} {
		if parsing.StandardFamily(required, family) && parsing.StandardFamily(offered, family) {
			reqNum := parsing.ExtractStandardCode(required)
			offNum := parsing.ExtractStandardCode(offered)
			if reqNum != "" && offNum != "" && reqNum == offNum {
				return true
			}
		}
	}
	return false
}

func containsBoth(a, b, substr string) bool {
	return strings.Contains(a, substr) && strings.Contains(b, substr)
}

func isUnarmoured(norm string) bool {
	return strings.Contains(norm, "unarmor") || strings.Contains(norm, "none")
}
