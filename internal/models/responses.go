package models

// StatusResponse is the common {success, message} envelope
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse is returned after a successful login
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    *SessionUser `json:"user,omitempty"`
}

// SessionResponse carries the current session identity
type SessionResponse struct {
	Success bool         `json:"success"`
	User    *SessionUser `json:"user,omitempty"`
}

type MessagesResponse struct {
	Success  bool           `json:"success"`
	Messages []InboxMessage `json:"messages"`
}

type MessageResponse struct {
	Success bool     `json:"success"`
	Data    *Message `json:"data,omitempty"`
}

type UnreadCountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type ContactsResponse struct {
	Success  bool            `json:"success"`
	Contacts []PublicProfile `json:"contacts"`
}

type FriendRequestsResponse struct {
	Success        bool            `json:"success"`
	FriendRequests []FriendRequest `json:"friendRequests"`
}

type MentorshipRequestsResponse struct {
	Success  bool                    `json:"success"`
	Requests []MentorshipRequestView `json:"requests"`
}

type SearchResponse struct {
	Success bool            `json:"success"`
	Results []PublicProfile `json:"results"`
}

type TasksResponse struct {
	Success bool   `json:"success"`
	Tasks   []Task `json:"tasks"`
}

type CreateTaskResponse struct {
	Success bool  `json:"success"`
	TaskID  int64 `json:"taskID"`
}
