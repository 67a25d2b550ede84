package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/adapter/http/handlers"
	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/pkg/apierrors"
	"github.com/nisargamalap/gridle/pkg/translator"
)

type groupServiceMock struct {
	mock.Mock
}

func (m *groupServiceMock) Create(ctx context.Context, in domain.CreateGroupInput) (*domain.Group, error) {
	args := m.Called(ctx, in)
	return groupReturn(args)
}

func (m *groupServiceMock) ListForUser(ctx context.Context, userID string) ([]domain.Group, error) {
	args := m.Called(ctx, userID)

	var groups []domain.Group
	if value := args.Get(0); value != nil {
		groups = value.([]domain.Group)
	}
	return groups, args.Error(1)
}

func (m *groupServiceMock) Get(ctx context.Context, groupID, userID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID, userID)
	return groupReturn(args)
}

func (m *groupServiceMock) Members(ctx context.Context, groupID, userID string) ([]domain.GroupMember, error) {
	args := m.Called(ctx, groupID, userID)

	var members []domain.GroupMember
	if value := args.Get(0); value != nil {
		members = value.([]domain.GroupMember)
	}
	return members, args.Error(1)
}

func (m *groupServiceMock) JoinByCode(ctx context.Context, code, userID string) (*domain.Group, error) {
	args := m.Called(ctx, code, userID)
	return groupReturn(args)
}

func (m *groupServiceMock) Update(ctx context.Context, groupID, actorID string, in domain.UpdateGroupInput) (*domain.Group, error) {
	args := m.Called(ctx, groupID, actorID, in)
	return groupReturn(args)
}

func (m *groupServiceMock) Delete(ctx context.Context, groupID, actorID string) error {
	return m.Called(ctx, groupID, actorID).Error(0)
}

func (m *groupServiceMock) List(ctx context.Context, search string, page, perPage int) ([]domain.Group, int, error) {
	args := m.Called(ctx, search, page, perPage)

	var groups []domain.Group
	if value := args.Get(0); value != nil {
		groups = value.([]domain.Group)
	}
	return groups, args.Int(1), args.Error(2)
}

func (m *groupServiceMock) AddMember(ctx context.Context, groupID, userID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID, userID)
	return groupReturn(args)
}

func (m *groupServiceMock) RemoveMember(ctx context.Context, groupID, userID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID, userID)
	return groupReturn(args)
}

func (m *groupServiceMock) TransferOwnership(ctx context.Context, groupID, newOwnerID string) (*domain.Group, error) {
	args := m.Called(ctx, groupID, newOwnerID)
	return groupReturn(args)
}

func (m *groupServiceMock) AdminUpdate(ctx context.Context, groupID string, in domain.UpdateGroupInput) (*domain.Group, error) {
	args := m.Called(ctx, groupID, in)
	return groupReturn(args)
}

func (m *groupServiceMock) AdminDelete(ctx context.Context, groupID string) error {
	return m.Called(ctx, groupID).Error(0)
}

func groupReturn(args mock.Arguments) (*domain.Group, error) {
	var group *domain.Group
	if value := args.Get(0); value != nil {
		group = value.(*domain.Group)
	}
	return group, args.Error(1)
}

func sampleGroup() *domain.Group {
	owner := domain.UserRef{ID: "owner-1", Name: "Ada", Email: "ada@example.com"}
	joined := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Group{
		ID:        "group-1",
		Name:      "Study Group",
		Owner:     owner,
		JoinCode:  "A1B2C3",
		Version:   1,
		CreatedAt: joined,
		UpdatedAt: joined,
		Members: []domain.GroupMember{
			{User: owner, Role: domain.MemberRoleAdmin, JoinedAt: joined},
		},
	}
}

// groupRouter mounts the handler behind a stub auth layer that injects the
// given user identity.
func groupRouter(handler *handlers.GroupHandler, userID string) *gin.Engine {
	router := newTestRouter(userID)
	router.POST("/api/groups", handler.CreateGroup)
	router.POST("/api/groups/join", handler.JoinGroup)
	router.GET("/api/groups/:id", handler.GetGroup)
	router.DELETE("/api/groups/:id", handler.DeleteGroup)
	return router
}

func TestGroupHandler_CreateGroup_Success(t *testing.T) {
	serviceMock := new(groupServiceMock)
	serviceMock.On("Create", mock.Anything, domain.CreateGroupInput{
		Name:    "Study Group",
		OwnerID: "owner-1",
	}).Return(sampleGroup(), nil).Once()

	handler := handlers.NewGroupHandler(serviceMock, new(taskServiceMock))
	router := groupRouter(handler, "owner-1")

	req := httptest.NewRequest(http.MethodPost, "/api/groups", strings.NewReader(`{"name":"Study Group"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.GroupItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "group-1", got.ID)
	require.Equal(t, "A1B2C3", got.JoinCode)
	require.Equal(t, "owner-1", got.Owner.ID)
	require.Len(t, got.Members, 1)
	require.Equal(t, "admin", got.Members[0].Role)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_JoinGroup_Success(t *testing.T) {
	group := sampleGroup()
	group.Members = append(group.Members, domain.GroupMember{
		User:     domain.UserRef{ID: "user-2", Name: "Bob", Email: "bob@example.com"},
		Role:     domain.MemberRoleMember,
		JoinedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	})

	serviceMock := new(groupServiceMock)
	serviceMock.On("JoinByCode", mock.Anything, "A1B2C3", "user-2").Return(group, nil).Once()

	handler := handlers.NewGroupHandler(serviceMock, new(taskServiceMock))
	router := groupRouter(handler, "user-2")

	req := httptest.NewRequest(http.MethodPost, "/api/groups/join", strings.NewReader(`{"join_code":"A1B2C3"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.GroupItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Members, 2)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_JoinGroup_AlreadyMember(t *testing.T) {
	serviceMock := new(groupServiceMock)
	serviceMock.On("JoinByCode", mock.Anything, "A1B2C3", "user-2").
		Return(nil, domain.ErrAlreadyMember).Once()

	handler := handlers.NewGroupHandler(serviceMock, new(taskServiceMock))
	router := groupRouter(handler, "user-2")

	req := httptest.NewRequest(http.MethodPost, "/api/groups/join", strings.NewReader(`{"join_code":"A1B2C3"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "You are already a member of this group", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_JoinGroup_UnknownCode(t *testing.T) {
	serviceMock := new(groupServiceMock)
	serviceMock.On("JoinByCode", mock.Anything, "ZZZZZZ", "user-2").
		Return(nil, domain.ErrGroupNotFound).Once()

	handler := handlers.NewGroupHandler(serviceMock, new(taskServiceMock))
	router := groupRouter(handler, "user-2")

	req := httptest.NewRequest(http.MethodPost, "/api/groups/join", strings.NewReader(`{"join_code":"ZZZZZZ"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid join code", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_GetGroup_NotFound(t *testing.T) {
	serviceMock := new(groupServiceMock)
	serviceMock.On("Get", mock.Anything, "group-1", "stranger").
		Return(nil, domain.ErrGroupNotFound).Once()

	handler := handlers.NewGroupHandler(serviceMock, new(taskServiceMock))
	router := groupRouter(handler, "stranger")

	req := httptest.NewRequest(http.MethodGet, "/api/groups/group-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_DeleteGroup_Forbidden(t *testing.T) {
	serviceMock := new(groupServiceMock)
	serviceMock.On("Delete", mock.Anything, "group-1", "user-2").
		Return(domain.ErrForbidden).Once()

	handler := handlers.NewGroupHandler(serviceMock, new(taskServiceMock))
	router := groupRouter(handler, "user-2")

	req := httptest.NewRequest(http.MethodDelete, "/api/groups/group-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Forbidden", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestGroupHandler_DeleteGroup_VersionConflict(t *testing.T) {
	serviceMock := new(groupServiceMock)
	serviceMock.On("Delete", mock.Anything, "group-1", "owner-1").
		Return(domain.ErrVersionConflict).Once()

	handler := handlers.NewGroupHandler(serviceMock, new(taskServiceMock))
	router := groupRouter(handler, "owner-1")

	req := httptest.NewRequest(http.MethodDelete, "/api/groups/group-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	serviceMock.AssertExpectations(t)
}
