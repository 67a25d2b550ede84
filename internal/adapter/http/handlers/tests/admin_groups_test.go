package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nisargamalap/gridle/internal/adapter/http/dto"
	"github.com/nisargamalap/gridle/internal/adapter/http/handlers"
	"github.com/nisargamalap/gridle/internal/core/domain"
	"github.com/nisargamalap/gridle/pkg/apierrors"
	"github.com/nisargamalap/gridle/pkg/translator"
)

func adminGroupRouter(handler *handlers.AdminGroupHandler) *gin.Engine {
	router := newTestRouter("admin-1")
	router.PUT("/api/admin/groups/:id/owner", handler.TransferOwnership)
	router.DELETE("/api/admin/groups/:id/members/:userId", handler.RemoveMember)
	return router
}

func TestAdminGroupHandler_TransferOwnership_Success(t *testing.T) {
	group := sampleGroup()
	group.Owner = domain.UserRef{ID: "user-2", Name: "Bob", Email: "bob@example.com"}

	serviceMock := new(groupServiceMock)
	serviceMock.On("TransferOwnership", mock.Anything, "group-1", "user-2").
		Return(group, nil).Once()

	router := adminGroupRouter(handlers.NewAdminGroupHandler(serviceMock))

	req := httptest.NewRequest(http.MethodPut, "/api/admin/groups/group-1/owner", strings.NewReader(`{"new_owner_id":"user-2"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.GroupItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "user-2", got.Owner.ID)
	serviceMock.AssertExpectations(t)
}

func TestAdminGroupHandler_TransferOwnership_NonMember(t *testing.T) {
	serviceMock := new(groupServiceMock)
	serviceMock.On("TransferOwnership", mock.Anything, "group-1", "stranger").
		Return(nil, domain.ErrNotAMember).Once()

	router := adminGroupRouter(handlers.NewAdminGroupHandler(serviceMock))

	req := httptest.NewRequest(http.MethodPut, "/api/admin/groups/group-1/owner", strings.NewReader(`{"new_owner_id":"stranger"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "User is not a member of this group", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestAdminGroupHandler_RemoveMember_Owner(t *testing.T) {
	serviceMock := new(groupServiceMock)
	serviceMock.On("RemoveMember", mock.Anything, "group-1", "owner-1").
		Return(nil, domain.ErrOwnerRemoval).Once()

	router := adminGroupRouter(handlers.NewAdminGroupHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/groups/group-1/members/owner-1", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	serviceMock.AssertExpectations(t)
}
