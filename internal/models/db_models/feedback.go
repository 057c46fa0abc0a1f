package db_models

import (
	"fmt"
	"strings"
)

type FeedbackStatus string

const (
	StatusPublished FeedbackStatus = "published"
	StatusPending   FeedbackStatus = "pending"
	StatusHidden    FeedbackStatus = "hidden"
)

var feedbackStatusLabels = map[FeedbackStatus]string{
	StatusPublished: "Published",
	StatusPending:   "Pending review",
	StatusHidden:    "Hidden",
}

func ParseFeedbackStatus(s string) (FeedbackStatus, bool) {
	st := FeedbackStatus(strings.ToLower(strings.TrimSpace(s)))
	_, ok := feedbackStatusLabels[st]
	return st, ok
}

func FeedbackStatuses() []FeedbackStatus {
	return []FeedbackStatus{StatusPublished, StatusPending, StatusHidden}
}

func (s FeedbackStatus) Label() string {
	return feedbackStatusLabels[s]
}

// AnonymousAuthor is shown when feedback has neither an account nor a name.
const AnonymousAuthor = "Anonymous (no name given)"

// TargetRef points feedback at one entity (EntityID set) or at the whole
// collection of an entity type (EntityID nil).
type TargetRef struct {
	EntityType string
	EntityID   *uint
}

func CollectionTarget(entityType string) TargetRef {
	return TargetRef{EntityType: entityType}
}

func ObjectTarget(entityType string, id uint) TargetRef {
	return TargetRef{EntityType: entityType, EntityID: &id}
}

func (t TargetRef) IsCollection() bool {
	return t.EntityID == nil
}

func (t TargetRef) String() string {
	if t.EntityID == nil {
		return t.EntityType
	}
	return fmt.Sprintf("%s#%d", t.EntityType, *t.EntityID)
}

// EntityTypeRecord is the persisted form of a registry entry. Removing a row
// removes every feedback attached to that type.
type EntityTypeRecord struct {
	Tag   string `gorm:"primaryKey;size:50"`
	Label string `gorm:"size:100;not null"`
}

func (EntityTypeRecord) TableName() string {
	return "entity_types"
}

type Feedback struct {
	BaseModel
	AuthorUserID *uint            `gorm:"index"`
	AuthorUser   *User            `gorm:"foreignKey:AuthorUserID;constraint:OnDelete:SET NULL"`
	AuthorName   *string          `gorm:"size:255"`
	Content      string           `gorm:"type:text;not null"`
	EntityType   string           `gorm:"size:50;not null;index:idx_feedbacks_target,priority:1"`
	EntityID     *uint            `gorm:"index:idx_feedbacks_target,priority:2"`
	Kind         EntityTypeRecord `gorm:"foreignKey:EntityType;references:Tag;constraint:OnDelete:CASCADE"`
	Status       FeedbackStatus   `gorm:"size:20;not null;default:published;index"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}

func (f *Feedback) Target() TargetRef {
	return TargetRef{EntityType: f.EntityType, EntityID: f.EntityID}
}

// DisplayAuthor resolves the label shown next to the feedback: the account's
// full name (or username), then the free-text name, then AnonymousAuthor.
func (f *Feedback) DisplayAuthor() string {
	if f.AuthorUser != nil {
		return f.AuthorUser.FullName()
	}
	if f.AuthorName != nil && *f.AuthorName != "" {
		return *f.AuthorName
	}
	return AnonymousAuthor
}
