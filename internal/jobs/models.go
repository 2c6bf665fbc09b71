package jobs

import "time"

// EligibilityCriteria is the set of optional constraints a job places on
// applicants. Every field may be absent; an absent field constrains nothing.
// Numeric fields are minimums the student must meet or exceed.
type EligibilityCriteria struct {
	Branches          []string `bson:"branches,omitempty" json:"branches,omitempty"`
	Gender            string   `bson:"gender,omitempty" json:"gender,omitempty"` // "" or "Both" = any
	CGPA              *float64 `bson:"cgpa,omitempty" json:"cgpa,omitempty"`
	JEEScore          *float64 `bson:"jeeScore,omitempty" json:"jeeScore,omitempty"`
	MHTCETScore       *float64 `bson:"mhtCetScore,omitempty" json:"mhtCetScore,omitempty"`
	TenthPercentage   *float64 `bson:"tenthPercentage,omitempty" json:"tenthPercentage,omitempty"`
	TwelfthPercentage *float64 `bson:"twelfthPercentage,omitempty" json:"twelfthPercentage,omitempty"`
	Session           string   `bson:"session,omitempty" json:"session,omitempty"`
}

// Job is a posting published to the students of one college.
// TotalApplications is display-only; the eligibility engine never reads it.
type Job struct {
	ID                  string              `bson:"_id,omitempty" json:"id"`
	CollegeID           string              `bson:"collegeId" json:"collegeId"`
	Title               string              `bson:"title" json:"title"`
	Description         string              `bson:"description,omitempty" json:"description,omitempty"`
	Company             string              `bson:"company" json:"company"`
	Location            string              `bson:"location,omitempty" json:"location,omitempty"`
	Type                string              `bson:"type,omitempty" json:"type,omitempty"`
	JobDate             time.Time           `bson:"jobDate,omitempty" json:"jobDate,omitempty"`
	EligibilityCriteria EligibilityCriteria `bson:"eligibilityCriteria" json:"eligibilityCriteria"`
	TotalApplications   int                 `bson:"totalApplications" json:"totalApplications"`
	LogoKey             string              `bson:"logoKey,omitempty" json:"-"`
	Logo                string              `bson:"-" json:"logo,omitempty"` // presigned URL, filled per response
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt"`
}
