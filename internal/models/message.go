package models

import "time"

// MessageStatus is the read state of a message. It only moves sent -> read.
type MessageStatus string

const (
	MessageSent MessageStatus = "sent"
	MessageRead MessageStatus = "read"
)

// Message is a row of the communications table
type Message struct {
	ID         int64         `json:"id"`
	SenderID   int64         `json:"senderID"`
	ReceiverID int64         `json:"receiverID"`
	Subject    string        `json:"subject"`
	Body       string        `json:"body"`
	SentAt     time.Time     `json:"sentAt"`
	Status     MessageStatus `json:"status"`
}

// NewMessage is the input for storing a message
type NewMessage struct {
	SenderID   int64
	ReceiverID int64
	Subject    string
	Body       string
}

// InboxMessage is a message joined with the other party's name and email
type InboxMessage struct {
	ID               int64         `json:"id"`
	CounterpartID    int64         `json:"counterpartID"`
	CounterpartName  string        `json:"counterpartName"`
	CounterpartEmail string        `json:"counterpartEmail"`
	Subject          string        `json:"subject"`
	Body             string        `json:"body"`
	SentAt           time.Time     `json:"sentAt"`
	Status           MessageStatus `json:"status"`
}

// SendMessageRequest is the payload for sending a message
type SendMessageRequest struct {
	ReceiverEmail string `json:"receiverEmail" binding:"required,email,max=255"`
	Subject       string `json:"subject" binding:"required,max=255"`
	Body          string `json:"body" binding:"required,max=10000"`
}
