package jobs

import (
	"fmt"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
)

// GenderAny is the explicit wildcard value criteria authors may use instead of
// leaving the gender field empty.
const GenderAny = "Both"

// IsEligible reports whether a student's academic profile satisfies every
// present field of the criteria. Absent criterion fields impose no constraint.
// A present numeric threshold with no corresponding student value fails
// closed: missing data never grants access. A nil profile is treated as a
// profile with no data at all.
func IsEligible(profile *models.StudentProfile, criteria EligibilityCriteria) bool {
	var p models.StudentProfile
	if profile != nil {
		p = *profile
	}
	if len(criteria.Branches) > 0 && !containsBranch(criteria.Branches, p.Branch) {
		return false
	}
	if g := criteria.Gender; g != "" && g != GenderAny && g != p.Gender {
		return false
	}
	if !meetsMinimum(p.CGPA, criteria.CGPA) {
		return false
	}
	if !meetsMinimum(p.JEEScore, criteria.JEEScore) {
		return false
	}
	if !meetsMinimum(p.MHTCETScore, criteria.MHTCETScore) {
		return false
	}
	if !meetsMinimum(p.TenthPercentage, criteria.TenthPercentage) {
		return false
	}
	if !meetsMinimum(p.TwelfthPercentage, criteria.TwelfthPercentage) {
		return false
	}
	if criteria.Session != "" && criteria.Session != p.Session {
		return false
	}
	return true
}

// FilterEligible returns the jobs the student qualifies for, preserving input
// order. No re-sorting, deduplication or scoring happens here; eligibility is
// strictly boolean. Pure over its arguments, safe for concurrent use.
func FilterEligible(profile *models.StudentProfile, all []Job) []Job {
	out := make([]Job, 0, len(all))
	for _, j := range all {
		if IsEligible(profile, j.EligibilityCriteria) {
			out = append(out, j)
		}
	}
	return out
}

func containsBranch(branches []string, branch string) bool {
	for _, b := range branches {
		if b == branch {
			return true
		}
	}
	return false
}

// meetsMinimum implements the fail-closed rule: no threshold means pass,
// a threshold with a missing student value means fail.
func meetsMinimum(have, want *float64) bool {
	if want == nil {
		return true
	}
	return have != nil && *have >= *want
}

// ValidateCriteria rejects malformed criteria before they are stored or
// evaluated. Percentages must lie in [0,100], CGPA in [0,10] and exam scores
// must be non-negative; nothing is silently coerced.
func ValidateCriteria(c EligibilityCriteria) error {
	if err := checkRange("cgpa", c.CGPA, 0, 10); err != nil {
		return err
	}
	if err := checkRange("tenthPercentage", c.TenthPercentage, 0, 100); err != nil {
		return err
	}
	if err := checkRange("twelfthPercentage", c.TwelfthPercentage, 0, 100); err != nil {
		return err
	}
	if err := checkNonNegative("jeeScore", c.JEEScore); err != nil {
		return err
	}
	if err := checkNonNegative("mhtCetScore", c.MHTCETScore); err != nil {
		return err
	}
	return nil
}

// ValidateProfile applies the same bounds to a student's academic profile.
func ValidateProfile(p models.StudentProfile) error {
	if err := checkRange("cgpa", p.CGPA, 0, 10); err != nil {
		return err
	}
	if err := checkRange("tenthPercentage", p.TenthPercentage, 0, 100); err != nil {
		return err
	}
	if err := checkRange("twelfthPercentage", p.TwelfthPercentage, 0, 100); err != nil {
		return err
	}
	if err := checkNonNegative("jeeScore", p.JEEScore); err != nil {
		return err
	}
	if err := checkNonNegative("mhtCetScore", p.MHTCETScore); err != nil {
		return err
	}
	return nil
}

func checkRange(field string, v *float64, lo, hi float64) error {
	if v == nil {
		return nil
	}
	if *v < lo || *v > hi {
		return fmt.Errorf("%w: %s must be between %g and %g", guard.ErrValidation, field, lo, hi)
	}
	return nil
}

func checkNonNegative(field string, v *float64) error {
	if v == nil {
		return nil
	}
	if *v < 0 {
		return fmt.Errorf("%w: %s must not be negative", guard.ErrValidation, field)
	}
	return nil
}
