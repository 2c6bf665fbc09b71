package models

import "time"

// User represents a portal account: the global admin, a TNP admin, or a student.
// Students carry an embedded academic profile used for job-eligibility matching.
type User struct {
	ID           string          `bson:"_id,omitempty" json:"id"`
	Email        string          `bson:"email" json:"email"`
	Name         string          `bson:"name" json:"name"`
	PasswordHash string          `bson:"passwordHash" json:"-"`
	Role         Role            `bson:"role" json:"role"`
	CollegeID    string          `bson:"collegeId,omitempty" json:"collegeId,omitempty"` // empty for the global admin
	Profile      *StudentProfile `bson:"profile,omitempty" json:"profile,omitempty"`     // students only
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// StudentProfile holds the academic data a job's eligibility criteria are
// matched against. Numeric fields are pointers: nil means the student has no
// value for that exam, which is different from scoring zero.
type StudentProfile struct {
	Branch            string   `bson:"branch,omitempty" json:"branch,omitempty"`
	Gender            string   `bson:"gender,omitempty" json:"gender,omitempty"`
	CGPA              *float64 `bson:"cgpa,omitempty" json:"cgpa,omitempty"`
	JEEScore          *float64 `bson:"jeeScore,omitempty" json:"jeeScore,omitempty"`
	MHTCETScore       *float64 `bson:"mhtCetScore,omitempty" json:"mhtCetScore,omitempty"`
	TenthPercentage   *float64 `bson:"tenthPercentage,omitempty" json:"tenthPercentage,omitempty"`
	TwelfthPercentage *float64 `bson:"twelfthPercentage,omitempty" json:"twelfthPercentage,omitempty"`
	Session           string   `bson:"session,omitempty" json:"session,omitempty"`
}
