package models

import "time"

// ContactStatus represents a chat contact's presence.
type ContactStatus string

const (
	ContactOnline  ContactStatus = "online"
	ContactOffline ContactStatus = "offline"
)

// ChatContact is a peer the current student can message.
type ChatContact struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Avatar string        `json:"avatar"`
	Status ContactStatus `json:"status"`
	Major  string        `json:"major"`
}

// ChatMessage is one message in a conversation log. Messages are stored
// per contact in chronological order. Text may be replaced in place with
// a redaction notice after post-hoc moderation; the record itself is
// never deleted.
type ChatMessage struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	IsMe      bool      `json:"isMe"`
}
