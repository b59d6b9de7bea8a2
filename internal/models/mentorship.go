package models

import "time"

// MentorshipRequest is a row of the mentorship_requests table
type MentorshipRequest struct {
	ID         int64
	MentorID   int64
	MentoreeID int64
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MentorshipRequestView is a request as listed for one of its parties
type MentorshipRequestView struct {
	RequestID       int64         `json:"requestID"`
	CounterpartID   int64         `json:"counterpartID"`
	CounterpartName string        `json:"counterpartName"`
	CounterpartRole Role          `json:"counterpartRole"`
	Status          RequestStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// RequestMentorshipRequest is the payload for asking a mentor for mentorship
type RequestMentorshipRequest struct {
	UserID int64 `json:"userID" binding:"required,gt=0"`
}
