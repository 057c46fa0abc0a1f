package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/internal/models/response_models"
	"resume/internal/registry"
	"resume/internal/repositories"
	"resume/pkg/metrics"
	"resume/pkg/utils"
)

type FeedbackServiceInterface interface {
	ListPublished(ctx context.Context, target db_models.TargetRef) ([]response_models.FeedbackView, error)
	Create(ctx context.Context, in NewFeedback) (*db_models.Feedback, error)
	Submit(ctx context.Context, target db_models.TargetRef, actor *db_models.User, sub request_models.FeedbackSubmission) (*db_models.Feedback, error)
	ModerationView(ctx context.Context) ([]response_models.FeedbackGroup, error)
	SetStatus(ctx context.Context, id uint, status string) (*response_models.FeedbackView, error)
	DescribeTarget(ctx context.Context, target db_models.TargetRef) (string, error)
}

// NewFeedback is the store-level create request. An authenticated Author
// wins over AuthorName, which is then dropped.
type NewFeedback struct {
	Author     *db_models.User
	AuthorName *string
	Content    string
	Target     db_models.TargetRef
	Status     db_models.FeedbackStatus
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	registry     *registry.Registry
	notifier     FeedbackNotifier
	moderator    ModerationService
	metrics      *metrics.Metrics
	log          *zap.Logger
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepositoryInterface,
	reg *registry.Registry,
	notifier FeedbackNotifier,
	moderator ModerationService,
	m *metrics.Metrics,
	log *zap.Logger,
) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		registry:     reg,
		notifier:     notifier,
		moderator:    moderator,
		metrics:      m,
		log:          log,
	}
}

func (s *FeedbackService) ListPublished(ctx context.Context, target db_models.TargetRef) ([]response_models.FeedbackView, error) {
	if _, ok := s.registry.Lookup(target.EntityType); !ok {
		return nil, fmt.Errorf("%w: %q", utils.ErrUnresolvedTarget, target.EntityType)
	}
	items, err := s.feedbackRepo.ListPublished(ctx, target)
	if err != nil {
		s.log.Error("list published feedback", zap.Stringer("target", target), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	views := make([]response_models.FeedbackView, 0, len(items))
	for i := range items {
		views = append(views, toFeedbackView(&items[i]))
	}
	return views, nil
}

// Create validates and persists one feedback, then fires the notification
// hook. The hook cannot fail the create.
func (s *FeedbackService) Create(ctx context.Context, in NewFeedback) (*db_models.Feedback, error) {
	verr := &utils.ValidationError{}
	content := strings.TrimSpace(in.Content)
	switch {
	case content == "":
		verr.Add("content", "This field is required.")
	case utf8.RuneCountInString(content) > request_models.FeedbackContentMax:
		verr.Add("content", fmt.Sprintf("Ensure this value has at most %d characters.", request_models.FeedbackContentMax))
	}

	status := in.Status
	if status == "" {
		status = db_models.StatusPublished
	}
	if _, ok := db_models.ParseFeedbackStatus(string(status)); !ok {
		verr.Add("status", "Select a valid choice.")
	}

	exists, err := s.registry.Exists(ctx, in.Target)
	switch {
	case errors.Is(err, utils.ErrUnresolvedTarget):
		verr.Add("entity_type", "Unknown entity type.")
		verr.Cause = err
	case err != nil:
		s.log.Error("resolve feedback target", zap.Stringer("target", in.Target), zap.Error(err))
		return nil, utils.ErrDatabaseError
	case !exists:
		verr.Add("entity_id", "The item you are commenting on does not exist.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	feedback := &db_models.Feedback{
		Content:    content,
		EntityType: in.Target.EntityType,
		EntityID:   in.Target.EntityID,
		Status:     status,
	}
	if in.Author.IsAuthenticated() {
		feedback.AuthorUserID = &in.Author.ID
	} else if in.AuthorName != nil && strings.TrimSpace(*in.AuthorName) != "" {
		name := strings.TrimSpace(*in.AuthorName)
		feedback.AuthorName = &name
	}

	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		s.log.Error("create feedback", zap.Stringer("target", in.Target), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if in.Author.IsAuthenticated() {
		feedback.AuthorUser = in.Author
	}

	s.metrics.IncFeedbackCreated(feedback.EntityType, string(feedback.Status))
	s.notifier.Notify(ctx, s.noticeFor(ctx, feedback))
	return feedback, nil
}

// Submit runs content screening and then Create. A screening failure holds
// the feedback for review instead of rejecting it. Input that Create would
// reject is never sent to the moderator.
func (s *FeedbackService) Submit(ctx context.Context, target db_models.TargetRef, actor *db_models.User, sub request_models.FeedbackSubmission) (*db_models.Feedback, error) {
	status := db_models.StatusPublished
	if s.moderator != nil && s.screenable(ctx, target, sub.Content) {
		screened, err := s.moderator.Screen(ctx, sub.Content)
		if err != nil {
			s.log.Warn("moderation screening failed, holding feedback for review", zap.Error(err))
			screened = db_models.StatusPending
		}
		status = screened
	}

	in := NewFeedback{
		Content: sub.Content,
		Target:  target,
		Status:  status,
	}
	if actor.IsAuthenticated() {
		in.Author = actor
	} else {
		in.AuthorName = sub.AuthorName
	}
	return s.Create(ctx, in)
}

func (s *FeedbackService) screenable(ctx context.Context, target db_models.TargetRef, content string) bool {
	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > request_models.FeedbackContentMax {
		return false
	}
	exists, err := s.registry.Exists(ctx, target)
	return err == nil && exists
}

func (s *FeedbackService) ModerationView(ctx context.Context) ([]response_models.FeedbackGroup, error) {
	items, err := s.feedbackRepo.ListForModeration(ctx)
	if err != nil {
		s.log.Error("list feedback for moderation", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	var groups []response_models.FeedbackGroup
	var last string
	for i := range items {
		f := &items[i]
		key := f.Target().String()
		if len(groups) == 0 || key != last {
			desc, err := s.DescribeTarget(ctx, f.Target())
			switch {
			case errors.Is(err, utils.ErrUnresolvedTarget):
				// type no longer registered; the rows stay moderatable
				desc = key
			case err != nil:
				return nil, err
			}
			groups = append(groups, response_models.FeedbackGroup{Target: desc})
			last = key
		}
		g := &groups[len(groups)-1]
		view := toFeedbackView(f)
		view.Target = g.Target
		g.Feedbacks = append(g.Feedbacks, view)
	}
	return groups, nil
}

// SetStatus moves a feedback between moderation states. It never notifies.
func (s *FeedbackService) SetStatus(ctx context.Context, id uint, status string) (*response_models.FeedbackView, error) {
	st, ok := db_models.ParseFeedbackStatus(status)
	if !ok {
		return nil, utils.ErrInvalidStatus
	}

	feedback, err := s.feedbackRepo.UpdateStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, utils.ErrFeedbackNotFound) {
			return nil, err
		}
		s.log.Error("update feedback status", zap.Uint("feedback_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.metrics.IncStatusChanged(string(st))
	view := toFeedbackView(feedback)
	return &view, nil
}

// DescribeTarget degrades to "(type) id=N" for deleted entities; it only
// fails for unregistered types or storage errors.
func (s *FeedbackService) DescribeTarget(ctx context.Context, target db_models.TargetRef) (string, error) {
	desc, err := s.registry.Describe(ctx, target)
	if err != nil {
		if errors.Is(err, utils.ErrUnresolvedTarget) {
			return "", err
		}
		s.log.Error("describe feedback target", zap.Stringer("target", target), zap.Error(err))
		return "", utils.ErrDatabaseError
	}
	return desc, nil
}

func (s *FeedbackService) noticeFor(ctx context.Context, f *db_models.Feedback) FeedbackNotice {
	target, err := s.registry.Describe(ctx, f.Target())
	if err != nil {
		target = f.Target().String()
	}
	return FeedbackNotice{
		ID:         f.ID,
		CreatedAt:  f.CreatedAt,
		Author:     f.DisplayAuthor(),
		Target:     target,
		EntityType: f.EntityType,
		EntityID:   f.EntityID,
		Status:     string(f.Status),
		Content:    f.Content,
	}
}

func toFeedbackView(f *db_models.Feedback) response_models.FeedbackView {
	return response_models.FeedbackView{
		ID:          f.ID,
		Author:      f.DisplayAuthor(),
		Content:     f.Content,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
		Status:      string(f.Status),
		StatusLabel: f.Status.Label(),
		EntityType:  f.EntityType,
		EntityID:    f.EntityID,
	}
}
