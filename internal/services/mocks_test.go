package services

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
)

type mockFeedbackRepo struct {
	mock.Mock
}

func (m *mockFeedbackRepo) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *mockFeedbackRepo) ListPublished(ctx context.Context, target db_models.TargetRef) ([]db_models.Feedback, error) {
	args := m.Called(ctx, target)
	items, _ := args.Get(0).([]db_models.Feedback)
	return items, args.Error(1)
}

func (m *mockFeedbackRepo) ListForModeration(ctx context.Context) ([]db_models.Feedback, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]db_models.Feedback)
	return items, args.Error(1)
}

func (m *mockFeedbackRepo) FindByID(ctx context.Context, id uint) (*db_models.Feedback, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*db_models.Feedback)
	return f, args.Error(1)
}

func (m *mockFeedbackRepo) UpdateStatus(ctx context.Context, id uint, status db_models.FeedbackStatus) (*db_models.Feedback, error) {
	args := m.Called(ctx, id, status)
	f, _ := args.Get(0).(*db_models.Feedback)
	return f, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *db_models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*db_models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindProfile(ctx context.Context, id uint) (*db_models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*db_models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByLogin(ctx context.Context, login string) (*db_models.User, error) {
	args := m.Called(ctx, login)
	u, _ := args.Get(0).(*db_models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id uint, in *request_models.ProfileUpdate) error {
	return m.Called(ctx, id, in).Error(0)
}

type mockModerator struct {
	mock.Mock
}

func (m *mockModerator) Screen(ctx context.Context, content string) (db_models.FeedbackStatus, error) {
	args := m.Called(ctx, content)
	return args.Get(0).(db_models.FeedbackStatus), args.Error(1)
}

type mockMailService struct {
	mock.Mock
}

func (m *mockMailService) SendFeedbackNotice(notice FeedbackNotice) error {
	return m.Called(notice).Error(0)
}

func (m *mockMailService) SendContactMessage(msg request_models.ContactRequest) error {
	return m.Called(msg).Error(0)
}

// recordingNotifier keeps every notice it was given.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []FeedbackNotice
}

func (r *recordingNotifier) Notify(_ context.Context, notice FeedbackNotice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice)
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notices)
}
