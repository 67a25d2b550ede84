//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/nisargamalap/gridle/internal/adapter/ai"
	dbadapter "github.com/nisargamalap/gridle/internal/adapter/db"
	httpadapter "github.com/nisargamalap/gridle/internal/adapter/http"
	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/adapter/http/handlers"
	"github.com/nisargamalap/gridle/internal/adapter/http/middleware"
	"github.com/nisargamalap/gridle/internal/adapter/mail"
	appservice "github.com/nisargamalap/gridle/internal/app/service"
	"github.com/nisargamalap/gridle/pkg/session"
	"github.com/nisargamalap/gridle/pkg/translator"
)

type GroupsIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
}

func TestGroupsIntegrationSuite(t *testing.T) {
	suite.Run(t, new(GroupsIntegrationSuite))
}

func (s *GroupsIntegrationSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  filepath.Join(projectRoot(s.T()), "pkg", "translator", "translation"),
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	s.IntegrationSuiteBase.SetupSuite()
}

func (s *GroupsIntegrationSuite) SetupTest() {
	s.ResetDatabase()

	userRepo := dbadapter.NewUserRepository(s.DB)
	groupRepo := dbadapter.NewGroupRepository(s.DB)
	taskRepo := dbadapter.NewTaskRepository(s.DB)
	noteRepo := dbadapter.NewNoteRepository(s.DB)
	projectRepo := dbadapter.NewProjectRepository(s.DB)
	analyticsRepo := dbadapter.NewAnalyticsRepository(s.DB)

	sessions := session.NewManager("integration-secret", time.Hour)
	mailer := mail.NewLogMailer("no-reply@test.local")

	authService := appservice.NewAuthService(userRepo, mailer, sessions, bcrypt.MinCost)
	userService := appservice.NewUserService(userRepo, bcrypt.MinCost)
	groupService := appservice.NewGroupService(groupRepo, userRepo)
	taskService := appservice.NewTaskService(taskRepo, groupRepo)
	noteService := appservice.NewNoteService(noteRepo, taskRepo)
	projectService := appservice.NewProjectService(projectRepo)
	analyticsService := appservice.NewAnalyticsService(analyticsRepo)
	// No API key configured: assistant routes answer 503 if exercised.
	assistantService := appservice.NewAssistantService(ai.NewGeminiClient(ai.Config{}), noteRepo)

	router := gin.New()
	limiter := middleware.NewRateLimiter(1000, time.Minute)
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(s.DB),
		Auth:      handlers.NewAuthHandler(authService),
		User:      handlers.NewUserHandler(userService),
		Group:     handlers.NewGroupHandler(groupService, taskService),
		Task:      handlers.NewTaskHandler(taskService),
		Note:      handlers.NewNoteHandler(noteService),
		Project:   handlers.NewProjectHandler(projectService),
		Assistant: handlers.NewAssistantHandler(assistantService),

		AdminUser:      handlers.NewAdminUserHandler(userService),
		AdminGroup:     handlers.NewAdminGroupHandler(groupService),
		AdminTask:      handlers.NewAdminTaskHandler(taskService),
		AdminNote:      handlers.NewAdminNoteHandler(noteService),
		AdminAnalytics: handlers.NewAdminAnalyticsHandler(analyticsService),
	}, sessions, limiter)

	s.router = router
}

func (s *GroupsIntegrationSuite) register(name, email string) string {
	body := fmt.Sprintf(`{"name":%q,"email":%q,"password":"s3cret-pass"}`, name, email)
	rec := s.do(http.MethodPost, "/api/auth/register", body, "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.AuthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().NotEmpty(got.Token)
	return got.Token
}

func (s *GroupsIntegrationSuite) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *GroupsIntegrationSuite) TestGroupLifecycle() {
	ownerToken := s.register("Ada", "ada@example.com")
	memberToken := s.register("Bob", "bob@example.com")

	// Owner creates a group and receives a join code.
	rec := s.do(http.MethodPost, "/api/groups", `{"name":"Study Group"}`, ownerToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var group dto.GroupItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &group))
	s.Require().Len(group.JoinCode, 6)
	s.Require().Len(group.Members, 1)
	s.Require().Equal("admin", group.Members[0].Role)

	// Member joins by code; the join code is case-insensitive on input.
	joinBody := fmt.Sprintf(`{"join_code":%q}`, strings.ToLower(group.JoinCode))
	rec = s.do(http.MethodPost, "/api/groups/join", joinBody, memberToken)
	s.Require().Equal(http.StatusOK, rec.Code)

	var joined dto.GroupItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &joined))
	s.Require().Len(joined.Members, 2)

	// Joining twice reports the conflict.
	rec = s.do(http.MethodPost, "/api/groups/join", joinBody, memberToken)
	s.Require().Equal(http.StatusConflict, rec.Code)

	// Both users see the group in their lists.
	rec = s.do(http.MethodGet, "/api/groups", "", memberToken)
	s.Require().Equal(http.StatusOK, rec.Code)
	var memberGroups []dto.GroupItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &memberGroups))
	s.Require().Len(memberGroups, 1)

	// Owner files a task and a note under the group.
	taskBody := fmt.Sprintf(`{"title":"Prepare agenda","due_date":"2026-04-01","group_id":%q}`, group.ID)
	rec = s.do(http.MethodPost, "/api/tasks", taskBody, ownerToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	noteBody := fmt.Sprintf(`{"title":"Minutes","content":"First meeting notes","group_id":%q}`, group.ID)
	rec = s.do(http.MethodPost, "/api/notes", noteBody, ownerToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	// A plain member cannot delete the group.
	rec = s.do(http.MethodDelete, "/api/groups/"+group.ID, "", memberToken)
	s.Require().Equal(http.StatusForbidden, rec.Code)

	// The owner can, and the delete cascades to the group's tasks and notes.
	rec = s.do(http.MethodDelete, "/api/groups/"+group.ID, "", ownerToken)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	var count int
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM tasks WHERE group_id = ?", group.ID))
	s.Require().Zero(count)
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM notes WHERE group_id = ?", group.ID))
	s.Require().Zero(count)
	s.Require().NoError(s.DB.Get(&count, "SELECT COUNT(*) FROM group_members WHERE group_id = ?", group.ID))
	s.Require().Zero(count)
}

func (s *GroupsIntegrationSuite) TestJoinWithUnknownCode() {
	token := s.register("Ada", "ada@example.com")

	rec := s.do(http.MethodPost, "/api/groups/join", `{"join_code":"ZZZZZZ"}`, token)
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *GroupsIntegrationSuite) TestGroupHiddenFromNonMembers() {
	ownerToken := s.register("Ada", "ada@example.com")
	strangerToken := s.register("Eve", "eve@example.com")

	rec := s.do(http.MethodPost, "/api/groups", `{"name":"Private Group","is_private":true}`, ownerToken)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var group dto.GroupItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &group))

	// Non-members get the same answer as for a group that does not exist.
	rec = s.do(http.MethodGet, "/api/groups/"+group.ID, "", strangerToken)
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *GroupsIntegrationSuite) TestRegisterDuplicateEmail() {
	s.register("Ada", "ada@example.com")

	rec := s.do(http.MethodPost, "/api/auth/register", `{"name":"Ada Again","email":"ada@example.com","password":"s3cret-pass"}`, "")
	s.Require().Equal(http.StatusConflict, rec.Code)
}
