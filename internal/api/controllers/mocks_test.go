package controllers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"resume/internal/models/db_models"
	"resume/internal/models/request_models"
	"resume/internal/models/response_models"
	"resume/internal/services"
)

type mockFeedbackService struct {
	mock.Mock
}

func (m *mockFeedbackService) ListPublished(ctx context.Context, target db_models.TargetRef) ([]response_models.FeedbackView, error) {
	args := m.Called(ctx, target)
	items, _ := args.Get(0).([]response_models.FeedbackView)
	return items, args.Error(1)
}

func (m *mockFeedbackService) Create(ctx context.Context, in services.NewFeedback) (*db_models.Feedback, error) {
	args := m.Called(ctx, in)
	f, _ := args.Get(0).(*db_models.Feedback)
	return f, args.Error(1)
}

func (m *mockFeedbackService) Submit(ctx context.Context, target db_models.TargetRef, actor *db_models.User, sub request_models.FeedbackSubmission) (*db_models.Feedback, error) {
	args := m.Called(ctx, target, actor, sub)
	f, _ := args.Get(0).(*db_models.Feedback)
	return f, args.Error(1)
}

func (m *mockFeedbackService) ModerationView(ctx context.Context) ([]response_models.FeedbackGroup, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]response_models.FeedbackGroup)
	return groups, args.Error(1)
}

func (m *mockFeedbackService) SetStatus(ctx context.Context, id uint, status string) (*response_models.FeedbackView, error) {
	args := m.Called(ctx, id, status)
	v, _ := args.Get(0).(*response_models.FeedbackView)
	return v, args.Error(1)
}

func (m *mockFeedbackService) DescribeTarget(ctx context.Context, target db_models.TargetRef) (string, error) {
	args := m.Called(ctx, target)
	return args.String(0), args.Error(1)
}

type mockResumeService struct {
	mock.Mock
}

func (m *mockResumeService) Profile(ctx context.Context, userID uint) (*db_models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*db_models.User)
	return u, args.Error(1)
}

func (m *mockResumeService) List(ctx context.Context, entityType string) ([]response_models.ResumeEntry, error) {
	args := m.Called(ctx, entityType)
	items, _ := args.Get(0).([]response_models.ResumeEntry)
	return items, args.Error(1)
}

func (m *mockResumeService) Get(ctx context.Context, entityType string, id uint) (*response_models.ResumeEntry, error) {
	args := m.Called(ctx, entityType, id)
	e, _ := args.Get(0).(*response_models.ResumeEntry)
	return e, args.Error(1)
}

func (m *mockResumeService) All(ctx context.Context) ([]response_models.SectionEntries, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]response_models.SectionEntries)
	return items, args.Error(1)
}

func (m *mockResumeService) Import(ctx context.Context, doc *request_models.ResumeDocument) (uint, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(uint), args.Error(1)
}

func (m *mockResumeService) UpdateProfile(ctx context.Context, userID uint, in *request_models.ProfileUpdate) error {
	return m.Called(ctx, userID, in).Error(0)
}

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, *db_models.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(1).(*db_models.User)
	return args.String(0), u, args.Error(2)
}

func (m *mockAccountService) Authenticate(ctx context.Context, token string) (*db_models.User, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(*db_models.User)
	return u, args.Error(1)
}

func (m *mockAccountService) Register(ctx context.Context, req request_models.SignUpRequest) (string, *db_models.User, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(1).(*db_models.User)
	return args.String(0), u, args.Error(2)
}

func (m *mockAccountService) SessionTTL() time.Duration {
	return time.Hour
}

type mockMailService struct {
	mock.Mock
}

func (m *mockMailService) SendFeedbackNotice(notice services.FeedbackNotice) error {
	return m.Called(notice).Error(0)
}

func (m *mockMailService) SendContactMessage(req request_models.ContactRequest) error {
	return m.Called(req).Error(0)
}

type mockMenuService struct {
	mock.Mock
}

func (m *mockMenuService) Menu(ctx context.Context, name, activeSlug string) ([]*response_models.MenuNode, error) {
	args := m.Called(ctx, name, activeSlug)
	nodes, _ := args.Get(0).([]*response_models.MenuNode)
	return nodes, args.Error(1)
}
