package models

import "time"

// MentorshipStatus is the lifecycle state of a mentorship request
type MentorshipStatus string

const (
	MentorshipPending  MentorshipStatus = "pending"
	MentorshipAccepted MentorshipStatus = "accepted"
	MentorshipRejected MentorshipStatus = "rejected"
)

// IsTerminal reports whether no further transition is possible from s
func (s MentorshipStatus) IsTerminal() bool {
	return s == MentorshipAccepted || s == MentorshipRejected
}

// CanTransitionTo reports whether a request in state s may move to next.
// Only pending requests move, and only to accepted or rejected.
func (s MentorshipStatus) CanTransitionTo(next MentorshipStatus) bool {
	return s == MentorshipPending && next.IsTerminal()
}

// MentorshipRequest is a student's request to be mentored by an alumni
type MentorshipRequest struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"student_id" db:"student_id"`
	AlumniID  int64            `json:"alumni_id" db:"alumni_id"`
	Message   string           `json:"message" db:"message"`
	Status    MentorshipStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}

// SentMentorshipRequest is a request as seen by the student who sent it
type SentMentorshipRequest struct {
	MentorshipRequest
	AlumniName        string `json:"alumni_name"`
	AlumniEmail       string `json:"alumni_email"`
	AlumniCompany     string `json:"company"`
	AlumniDesignation string `json:"designation"`
}

// ReceivedMentorshipRequest is a request as seen by the alumni it targets
type ReceivedMentorshipRequest struct {
	MentorshipRequest
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
}

// MentorshipStats counts requests per status
type MentorshipStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}
