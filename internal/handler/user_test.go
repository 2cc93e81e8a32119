package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

func TestUserHandlers(t *testing.T) {
	svcs := setupServices(t)
	fixedClock(t, 1000)

	save := func(xuid, name string, ts *int64) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users",
			jsonBody(t, SaveUserRequest{XUID: xuid, Name: name, JoinTime: ts}))
		return serve(HandleSaveUser(svcs.users), req)
	}

	require.Equal(t, http.StatusOK, save("1", "Steve", ptr(int64(100))).Code)
	require.Equal(t, http.StatusOK, save("2", "steve_alt", ptr(int64(200))).Code)
	require.Equal(t, http.StatusOK, save("3", "Bob", nil).Code)

	t.Run("get user", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/3", nil), ParamXUID, "3")
		w := serve(HandleGetUser(svcs.users), req)
		require.Equal(t, http.StatusOK, w.Code)

		u := decode[domain.User](t, w)
		assert.Equal(t, "Bob", u.Name)
		assert.Equal(t, int64(1000), u.LastJoin, "omitted join time uses the clock")
	})

	t.Run("get unknown user is 404", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/api/v1/users/9", nil), ParamXUID, "9")
		w := serve(HandleGetUser(svcs.users), req)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUserNotFoundError)
	})

	t.Run("find", func(t *testing.T) {
		w := serve(HandleFindUser(svcs.users), httptest.NewRequest(http.MethodGet, "/api/v1/users/find?name=STEVE", nil))
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[UserMatchResponse](t, w)
		require.NotNil(t, resp.User)
		assert.Equal(t, "2", resp.User.XUID)
	})

	t.Run("find without match returns null user", func(t *testing.T) {
		w := serve(HandleFindUser(svcs.users), httptest.NewRequest(http.MethodGet, "/api/v1/users/find?name=zzz", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user":null}`, w.Body.String())
	})

	t.Run("search", func(t *testing.T) {
		w := serve(HandleSearchUsers(svcs.users), httptest.NewRequest(http.MethodGet, "/api/v1/users/search?name=ste", nil))
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[UserListResponse](t, w)
		require.Len(t, resp.Users, 2)
		assert.Equal(t, "steve_alt", resp.Users[0].Name)

		w = serve(HandleSearchUsers(svcs.users), httptest.NewRequest(http.MethodGet, "/api/v1/users/search?name=zzz", nil))
		assert.JSONEq(t, `{"users":[]}`, w.Body.String())
	})

	t.Run("search requires name", func(t *testing.T) {
		w := serve(HandleSearchUsers(svcs.users), httptest.NewRequest(http.MethodGet, "/api/v1/users/search", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("record leave", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodPost, "/api/v1/users/1/leave",
			strings.NewReader(`{"leave_time":150}`)), ParamXUID, "1")
		w := serve(HandleRecordLeave(svcs.users), req)
		require.Equal(t, http.StatusOK, w.Code)

		u, err := svcs.users.GetUser(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, int64(150), u.LastLeave)
	})

	t.Run("record leave without body uses clock", func(t *testing.T) {
		req := withURLParams(httptest.NewRequest(http.MethodPost, "/api/v1/users/2/leave", nil), ParamXUID, "2")
		w := serve(HandleRecordLeave(svcs.users), req)
		require.Equal(t, http.StatusOK, w.Code)

		u, err := svcs.users.GetUser(context.Background(), "2")
		require.NoError(t, err)
		assert.Equal(t, int64(1000), u.LastLeave)
	})

	t.Run("explicit zero timestamps are stored", func(t *testing.T) {
		require.Equal(t, http.StatusOK, save("4", "Zed", ptr(int64(0))).Code)

		req := withURLParams(httptest.NewRequest(http.MethodPost, "/api/v1/users/4/leave",
			strings.NewReader(`{"leave_time":0}`)), ParamXUID, "4")
		require.Equal(t, http.StatusOK, serve(HandleRecordLeave(svcs.users), req).Code)

		u, err := svcs.users.GetUser(context.Background(), "4")
		require.NoError(t, err)
		assert.Equal(t, int64(0), u.LastJoin)
		assert.Equal(t, int64(0), u.LastLeave)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(`{"xuid":`))
		w := serve(HandleSaveUser(svcs.users), req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation errors use json names", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader(`{"xuid":"  ","join_time":-5}`))
		w := serve(HandleSaveUser(svcs.users), req)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decode[ValidationErrorResponse](t, w)
		assert.Contains(t, resp.Fields, "xuid")
		assert.Contains(t, resp.Fields, "name")
		assert.Contains(t, resp.Fields, "join_time")
	})
}

type MockUserService struct {
	mock.Mock
	user.Service
}

func (m *MockUserService) SearchUsersByName(ctx context.Context, pattern string) ([]domain.User, error) {
	args := m.Called(ctx, pattern)
	if u := args.Get(0); u != nil {
		return u.([]domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestUserHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"unavailable", domain.ErrStorageUnavailable, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{"query failure", domain.ErrQueryFailure, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"invalid", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
		{"other", errors.New("secret disk path /var/x"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			svc.On("SearchUsersByName", mock.Anything, "x").Return(nil, tt.err)

			w := serve(HandleSearchUsers(svc), httptest.NewRequest(http.MethodGet, "/api/v1/users/search?name=x", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.msg)
			assert.NotContains(t, w.Body.String(), "/var/x")
		})
	}
}
