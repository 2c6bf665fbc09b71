package jobs

import (
	"errors"
	"testing"

	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
)

func f(v float64) *float64 { return &v }

func csProfile() *models.StudentProfile {
	return &models.StudentProfile{
		Branch:  "CS",
		Gender:  "M",
		CGPA:    f(8.2),
		Session: "2024-2025",
	}
}

func TestIsEligible_EmptyCriteriaMatchesEveryone(t *testing.T) {
	if !IsEligible(csProfile(), EligibilityCriteria{}) {
		t.Fatal("criteria with no fields must match every student")
	}
	// even a student with no profile data at all
	if !IsEligible(nil, EligibilityCriteria{}) {
		t.Fatal("criteria with no fields must match a student without a profile")
	}
}

func TestIsEligible_BranchAndCGPA(t *testing.T) {
	c := EligibilityCriteria{Branches: []string{"CS", "IT"}, CGPA: f(7.5)}
	if !IsEligible(csProfile(), c) {
		t.Fatal("CS student with 8.2 CGPA should match branches [CS IT] cgpa>=7.5")
	}
}

func TestIsEligible_BranchMismatch(t *testing.T) {
	c := EligibilityCriteria{Branches: []string{"ME"}}
	if IsEligible(csProfile(), c) {
		t.Fatal("CS student must not match branches [ME]")
	}
}

func TestIsEligible_MissingScoreFailsClosed(t *testing.T) {
	// profile has no JEE score; a JEE threshold must reject, not skip
	c := EligibilityCriteria{JEEScore: f(120)}
	if IsEligible(csProfile(), c) {
		t.Fatal("missing jeeScore with a jeeScore threshold must fail closed")
	}
}

func TestIsEligible_NumericThresholdBoundary(t *testing.T) {
	p := csProfile()
	if !IsEligible(p, EligibilityCriteria{CGPA: f(8.2)}) {
		t.Fatal("threshold equal to the student's value must pass")
	}
	if IsEligible(p, EligibilityCriteria{CGPA: f(8.3)}) {
		t.Fatal("threshold above the student's value must fail")
	}
}

func TestIsEligible_GenderWildcards(t *testing.T) {
	p := csProfile()
	if !IsEligible(p, EligibilityCriteria{Gender: GenderAny}) {
		t.Fatal("gender Both must match any student")
	}
	if !IsEligible(p, EligibilityCriteria{Gender: "M"}) {
		t.Fatal("gender M must match a male student")
	}
	if IsEligible(p, EligibilityCriteria{Gender: "F"}) {
		t.Fatal("gender F must not match a male student")
	}
	// case-sensitive exact match
	if IsEligible(p, EligibilityCriteria{Gender: "m"}) {
		t.Fatal("gender match is case-sensitive")
	}
}

func TestIsEligible_Session(t *testing.T) {
	p := csProfile()
	if !IsEligible(p, EligibilityCriteria{Session: "2024-2025"}) {
		t.Fatal("matching session must pass")
	}
	if IsEligible(p, EligibilityCriteria{Session: "2023-2024"}) {
		t.Fatal("different session must fail")
	}
}

func TestIsEligible_ConjunctionOverPresentFields(t *testing.T) {
	p := csProfile()
	// one satisfied field does not rescue another failing one
	c := EligibilityCriteria{Branches: []string{"CS"}, CGPA: f(9.0)}
	if IsEligible(p, c) {
		t.Fatal("all present criteria must hold, not just one")
	}
}

func TestFilterEligible_PreservesOrder(t *testing.T) {
	p := csProfile()
	all := []Job{
		{ID: "j1", EligibilityCriteria: EligibilityCriteria{Branches: []string{"CS"}}},
		{ID: "j2", EligibilityCriteria: EligibilityCriteria{Branches: []string{"ME"}}},
		{ID: "j3", EligibilityCriteria: EligibilityCriteria{CGPA: f(8.0)}},
	}
	got := FilterEligible(p, all)
	if len(got) != 2 || got[0].ID != "j1" || got[1].ID != "j3" {
		t.Fatalf("expected [j1 j3] in order, got %+v", got)
	}
}

func TestFilterEligible_Subsequence(t *testing.T) {
	p := csProfile()
	all := []Job{
		{ID: "a"},
		{ID: "b", EligibilityCriteria: EligibilityCriteria{JEEScore: f(1)}},
		{ID: "c"},
		{ID: "d"},
	}
	got := FilterEligible(p, all)
	if len(got) > len(all) {
		t.Fatalf("result longer than input: %d > %d", len(got), len(all))
	}
	// relative order must match the input
	last := -1
	for _, g := range got {
		idx := -1
		for i, j := range all {
			if j.ID == g.ID {
				idx = i
			}
		}
		if idx <= last {
			t.Fatalf("order not preserved: %+v", got)
		}
		last = idx
	}
}

func TestFilterEligible_Empty(t *testing.T) {
	if got := FilterEligible(csProfile(), nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestValidateCriteria(t *testing.T) {
	if err := ValidateCriteria(EligibilityCriteria{CGPA: f(7.5), TenthPercentage: f(60)}); err != nil {
		t.Fatalf("valid criteria rejected: %v", err)
	}
	cases := []EligibilityCriteria{
		{CGPA: f(-1)},
		{CGPA: f(10.5)},
		{TenthPercentage: f(-3)},
		{TwelfthPercentage: f(101)},
		{JEEScore: f(-10)},
		{MHTCETScore: f(-0.5)},
	}
	for i, c := range cases {
		if err := ValidateCriteria(c); !errors.Is(err, guard.ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}

func TestValidateProfile(t *testing.T) {
	ok := models.StudentProfile{CGPA: f(9.1), TwelfthPercentage: f(88)}
	if err := ValidateProfile(ok); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}
	bad := models.StudentProfile{TenthPercentage: f(-4)}
	if err := ValidateProfile(bad); !errors.Is(err, guard.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
