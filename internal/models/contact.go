package models

import "time"

// RequestStatus is the state of a friend or mentorship request.
// pending is the only state that may change.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusAccepted RequestStatus = "accepted"
	StatusRejected RequestStatus = "rejected"
)

// Contact is a friend edge. UserID1 requested, UserID2 was invited.
type Contact struct {
	ID        int64
	UserID1   int64
	UserID2   int64
	Status    RequestStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasParty reports whether userID is an endpoint of the edge
func (c *Contact) HasParty(userID int64) bool {
	return c.UserID1 == userID || c.UserID2 == userID
}

// Friend request directions relative to the viewer
const (
	DirectionIncoming = "incoming"
	DirectionOutgoing = "outgoing"
)

// FriendRequest is a pending edge as seen by one of its parties
type FriendRequest struct {
	ContactID       int64     `json:"contactID"`
	CounterpartID   int64     `json:"counterpartID"`
	CounterpartName string    `json:"userName"`
	Direction       string    `json:"direction"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AddFriendRequest is the payload for sending a friend request
type AddFriendRequest struct {
	UserID int64 `json:"userID" binding:"required,gt=0"`
}

// RespondRequest is the payload for accepting or rejecting a request
type RespondRequest struct {
	Status RequestStatus `json:"status" binding:"required,oneof=accepted rejected"`
}
