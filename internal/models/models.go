package models

import (
	"time"
)

// Job is an application record as served by the job API. It is read-only here:
// every derived view is rebuilt from a fresh []Job snapshot.
type Job struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role,omitempty"`
	Status      Status `json:"status"`
	DateApplied Date   `json:"dateApplied"`
	Deadline    Date   `json:"deadline"`
	JobLink     string `json:"jobLink,omitempty"`
	Note        string `json:"note,omitempty"`
	Resume      string `json:"resume,omitempty"`
}

// DashboardSnapshot is one row of a user's funnel history, written each time
// a dashboard is built.
type DashboardSnapshot struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Owner is a sha256 of the bearer token; tokens themselves are never stored.
	Owner string `gorm:"index;not null" json:"-"`

	Total         int     `json:"total"`
	Interviews    int     `json:"interviews"`
	Offers        int     `json:"offers"`
	SuccessRate   float64 `json:"success_rate"`
	RejectionRate float64 `json:"rejection_rate"`
}
