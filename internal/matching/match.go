package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/arvind/rfp-responder/internal/types"
)

// Matcher scores products against tender requirement specs. It is stateless
// and safe for concurrent use; construct it once and pass it explicitly.
type Matcher struct{}

// NewMatcher returns a Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// MatchProduct computes a weighted similarity score between a requirement
// spec and one product. The function is total: attributes missing from
// either side are simply excluded from both numerator and denominator, and
// a pair with no comparable attributes scores 0 with empty spec lists.
func (m *Matcher) MatchProduct(req types.RequirementSpec, product types.Product) types.SpecMatchResult {
	var (
		matched   []string
		unmatched []string
		strengths []string
		gaps      []string
	)

	totalScore := 0.0
	maxScore := 0.0
	specs := product.Specifications

	if req.Voltage != "" && specs.Voltage != "" {
		maxScore += voltageWeight
		frac := matchVoltage(req.Voltage, specs.Voltage)
		totalScore += voltageWeight * frac
		if frac >= acceptThreshold {
			matched = append(matched, "Voltage")
			strengths = append(strengths, fmt.Sprintf("Voltage rating %s matches requirement", specs.Voltage))
		} else {
			unmatched = append(unmatched, "Voltage")
			gaps = append(gaps, fmt.Sprintf("Voltage %s may not match %s", specs.Voltage, req.Voltage))
		}
	}

	if req.Conductor != "" && specs.Conductor != "" {
		maxScore += conductorWeight
		if matchConductor(req.Conductor, specs.Conductor) {
			totalScore += conductorWeight
			matched = append(matched, "Conductor")
			strengths = append(strengths, fmt.Sprintf("%s conductor as required", specs.Conductor))
		} else {
			unmatched = append(unmatched, "Conductor")
			gaps = append(gaps, fmt.Sprintf("Requires %s, product has %s", req.Conductor, specs.Conductor))
		}
	}

	if req.Insulation != "" && specs.Insulation != "" {
		maxScore += insulationWeight
		frac := matchInsulation(req.Insulation, specs.Insulation)
		totalScore += insulationWeight * frac
		if frac >= acceptThreshold {
			matched = append(matched, "Insulation")
			strengths = append(strengths, fmt.Sprintf("Insulation type %s matches requirement", specs.Insulation))
		} else {
			unmatched = append(unmatched, "Insulation")
			gaps = append(gaps, fmt.Sprintf("Insulation mismatch: requires %s, has %s", req.Insulation, specs.Insulation))
		}
	}

	if req.Size != "" && specs.Size != "" {
		maxScore += sizeWeight
		frac := matchSize(req.Size, specs.Size)
		switch {
		case frac >= 0.9:
			totalScore += sizeWeight * frac
			matched = append(matched, "Size/Cross-section")
			strengths = append(strengths, fmt.Sprintf("Size %s matches specification", specs.Size))
		case frac >= 0.5:
			// Partial credit: close but not exact.
			totalScore += sizeWeight * frac * 0.7
			matched = append(matched, "Size/Cross-section (Partial)")
			gaps = append(gaps, fmt.Sprintf("Size %s approximately matches %s", specs.Size, req.Size))
		default:
			unmatched = append(unmatched, "Size/Cross-section")
			gaps = append(gaps, fmt.Sprintf("Size mismatch: requires %s, has %s", req.Size, specs.Size))
		}
	}

	if req.Armoring != "" && specs.Armoring != "" {
		maxScore += armoringWeight
		if matchArmoring(req.Armoring, specs.Armoring) {
			totalScore += armoringWeight
			matched = append(matched, "Armoring")
			strengths = append(strengths, fmt.Sprintf("Armoring type %s as specified", specs.Armoring))
		} else {
			unmatched = append(unmatched, "Armoring")
			gaps = append(gaps, fmt.Sprintf("Armoring type differs: requires %s", req.Armoring))
		}
	}

	if req.Standard != "" && specs.Standard != "" {
		maxScore += standardWeight
		if matchStandard(req.Standard, specs.Standard) {
			totalScore += standardWeight
			matched = append(matched, "Standard")
			strengths = append(strengths, fmt.Sprintf("Compliant with %s", specs.Standard))
		} else {
			unmatched = append(unmatched, "Standard")
			gaps = append(gaps, fmt.Sprintf("Standard mismatch: requires %s", req.Standard))
		}
	}

	matchScore := 0
	if maxScore > 0 {
		matchScore = int(math.Round(totalScore / maxScore * 100))
	}

	return types.SpecMatchResult{
		Product:        product,
		MatchScore:     matchScore,
		MatchedSpecs:   matched,
		UnmatchedSpecs: unmatched,
		Strengths:      strengths,
		Gaps:           gaps,
	}
}

// FindTopMatches scores every product and returns at most topN results
// ordered by descending match score. Ties keep catalog order: the
// first-listed product wins.
func (m *Matcher) FindTopMatches(req types.RequirementSpec, products []types.Product, topN int) []types.SpecMatchResult {
	results := make([]types.SpecMatchResult, 0, len(products))
	for _, product := range products {
		results = append(results, m.MatchProduct(req, product))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	if topN >= 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}
