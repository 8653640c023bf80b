package entity

import "time"

// Conversation is a single stored dialogue turn: one user message together
// with the bot response produced for it.
type Conversation struct {
	ID           int64     `json:"id"`
	SessionID    string    `json:"session_id"`
	UserMessage  string    `json:"user_message"`
	BotResponse  string    `json:"bot_response"`
	UserAgent    string    `json:"user_agent,omitempty"`
	CreatedAt    time.Time `json:"timestamp"`
}

// Job is a catalog entry describing one senior job listing.
type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements,omitempty"`
	Salary       string    `json:"salary,omitempty"`
	WorkType     string    `json:"work_type,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// ConversationPage is one page of stored conversations, newest first.
type ConversationPage struct {
	Conversations []*Conversation `json:"conversations"`
	Total         int             `json:"total"`
	Pages         int             `json:"pages"`
	CurrentPage   int             `json:"current_page"`
}

type JobListResponse struct {
	Jobs []*Job `json:"jobs"`
}

// RebuildResult reports the outcome of a knowledge index rebuild.
type RebuildResult struct {
	Documents int `json:"documents"`
	Chunks    int `json:"chunks"`
	Indexed   int `json:"indexed"`
}
