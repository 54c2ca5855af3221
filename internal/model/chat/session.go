package chat

import "time"

// Session captures a transient anonymous conversation resumed by token.
type Session struct {
	Token        string    `json:"token"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActivity"`
}

// SessionSummary is the diagnostic view exposed by the listing endpoint.
// It deliberately carries no message content.
type SessionSummary struct {
	Token        string    `json:"token"`
	MessageCount int       `json:"messageCount"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActivity"`
}
