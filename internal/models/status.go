package models

// Status is the canonical pipeline stage of an application.
type Status string

const (
	StatusApplicationSubmitted  Status = "ApplicationSubmitted"
	StatusUnderReview           Status = "UnderReview"
	StatusInterviewScheduled    Status = "InterviewScheduled"
	StatusInterviewCompleted    Status = "InterviewCompleted"
	StatusApplicationAccepted   Status = "ApplicationAccepted"
	StatusApplicationDeclined   Status = "ApplicationDeclined"
	StatusApplicationInProgress Status = "ApplicationInProgress"
	StatusAssessment            Status = "Assessment"
)

// AllStatuses is the closed set of known codes in display order.
var AllStatuses = []Status{
	StatusApplicationSubmitted,
	StatusApplicationInProgress,
	StatusUnderReview,
	StatusAssessment,
	StatusInterviewScheduled,
	StatusInterviewCompleted,
	StatusApplicationAccepted,
	StatusApplicationDeclined,
}

var statusLabels = map[Status]string{
	StatusApplicationDeclined:   "Job Applications Declined",
	StatusUnderReview:           "Job Under Review",
	StatusInterviewCompleted:    "Job Interviews Completed",
	StatusApplicationAccepted:   "Job Offers Received",
	StatusInterviewScheduled:    "Job Interviews Scheduled",
	StatusApplicationInProgress: "Job Applications in Progress",
	StatusApplicationSubmitted:  "Job Applications Submitted",
	StatusAssessment:            "Assessments to-do",
}

// IsKnown reports whether s is one of AllStatuses.
func (s Status) IsKnown() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label, or the raw code for unrecognised statuses.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
