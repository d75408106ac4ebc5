package domain

import "time"

// JobType represents the employment type of a job posting.
type JobType string

// Job types.
const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// IsValid checks if the job type is valid.
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// JobLevel represents the seniority level of a job posting.
type JobLevel string

// Job levels.
const (
	JobLevelEntry  JobLevel = "Entry"
	JobLevelMid    JobLevel = "Mid-level"
	JobLevelSenior JobLevel = "Senior"
	JobLevelLead   JobLevel = "Lead"
)

// IsValid checks if the job level is valid.
func (l JobLevel) IsValid() bool {
	switch l {
	case JobLevelEntry, JobLevelMid, JobLevelSenior, JobLevelLead:
		return true
	}
	return false
}

// Job represents an open position on the careers page.
type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Team             string    `json:"team"`
	Location         string    `json:"location"`
	Type             JobType   `json:"type"`
	Level            JobLevel  `json:"level"`
	Description      string    `json:"description"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
