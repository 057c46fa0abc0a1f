package request_models

// FeedbackContentMax bounds the feedback body, in characters.
const FeedbackContentMax = 4000

// AnonymousFeedbackInput is the schema offered to visitors who are not
// signed in: an optional display name and the body.
type AnonymousFeedbackInput struct {
	AuthorName string `form:"author_name" validate:"max=255"`
	Content    string `form:"content" validate:"required,max=4000"`
}

// AuthenticatedFeedbackInput is the schema for signed-in users. It has no
// name field; the author is the account.
type AuthenticatedFeedbackInput struct {
	Content string `form:"content" validate:"required,max=4000"`
}

// FeedbackSubmission is the validated result of either schema.
type FeedbackSubmission struct {
	Content    string
	AuthorName *string
}

type FeedbackStatusRequest struct {
	Status string `form:"status" json:"status" validate:"required,oneof=published pending hidden"`
}
