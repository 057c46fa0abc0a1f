package response_models

import "time"

type FeedbackView struct {
	ID          uint      `json:"id"`
	Author      string    `json:"author"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	EntityType  string    `json:"entity_type"`
	EntityID    *uint     `json:"entity_id,omitempty"`
	// Target is filled on the moderation view only.
	Target string `json:"target,omitempty"`
}

// FeedbackGroup is one target's feedback on the moderation page.
type FeedbackGroup struct {
	Target    string         `json:"target"`
	Feedbacks []FeedbackView `json:"feedbacks"`
}
