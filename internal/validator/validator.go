package validator

import (
	"context"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/rules"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate implements ports.Validator.
func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (domain.ValidationResult, error) {
	return Check(g), nil
}

// Check classifies a grid: StatusInvalid with the duplicate list, or
// StatusValidIncomplete / StatusValidComplete when no unit repeats a digit.
// The issue list is reproducible: rows, then columns, then boxes, each in
// ascending index, duplicate values ascending within a unit, one issue per
// (unit, value) however often the value repeats. Check never mutates g.
func Check(g *domain.Grid) domain.ValidationResult {
	var issues []domain.ValidationIssue
	for i := 0; i < 9; i++ {
		issues = appendUnitIssues(issues, domain.UnitRow, i, rules.Row(g, i))
	}
	for i := 0; i < 9; i++ {
		issues = appendUnitIssues(issues, domain.UnitColumn, i, rules.Column(g, i))
	}
	for i := 0; i < 9; i++ {
		issues = appendUnitIssues(issues, domain.UnitBox, i, rules.Box(g, i))
	}
	if len(issues) > 0 {
		return domain.ValidationResult{Status: domain.StatusInvalid, Issues: issues}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == domain.Empty {
				return domain.ValidationResult{Status: domain.StatusValidIncomplete}
			}
		}
	}
	return domain.ValidationResult{Status: domain.StatusValidComplete}
}

// appendUnitIssues counts digit occurrences in one unit and appends one
// issue per repeated value, in ascending value order. Empty cells are
// skipped.
func appendUnitIssues(issues []domain.ValidationIssue, kind domain.UnitKind, index int, cells [9]uint8) []domain.ValidationIssue {
	var count [10]uint8
	for _, v := range cells {
		if v != domain.Empty {
			count[v]++
		}
	}
	for v := uint8(1); v <= 9; v++ {
		if count[v] >= 2 {
			issues = append(issues, domain.ValidationIssue{Unit: kind, Index: index, Value: v})
		}
	}
	return issues
}
