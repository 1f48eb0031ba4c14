package models

import "time"

// ForumCategory groups forum posts by topic.
type ForumCategory string

const (
	ForumAcademics ForumCategory = "Academics"
	ForumCareer    ForumCategory = "Career"
	ForumWellness  ForumCategory = "Wellness"
	ForumGeneral   ForumCategory = "General"
)

// ForumPost is a community post. Replies are append-only and owned
// exclusively by their parent post. Likes never go negative.
type ForumPost struct {
	ID           string        `json:"id"`
	Author       string        `json:"author"`
	AuthorAvatar string        `json:"authorAvatar"`
	Category     ForumCategory `json:"category"`
	Content      string        `json:"content"`
	Timestamp    time.Time     `json:"timestamp"`
	Likes        int           `json:"likes"`
	Replies      []ForumReply  `json:"replies"`
}

// ForumReply is a single reply under a forum post.
type ForumReply struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
