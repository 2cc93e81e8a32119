package handler

import (
	"net/http"

	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/logger"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

// SaveUserRequest records a join. JoinTime is unix seconds; omitted means now.
type SaveUserRequest struct {
	XUID     string `json:"xuid" validate:"required,notblank,max=64"`
	Name     string `json:"name" validate:"required,notblank,max=64"`
	JoinTime *int64 `json:"join_time,omitempty" validate:"omitempty,min=0"`
}

// RecordLeaveRequest records a leave. LeaveTime is unix seconds; omitted means now.
type RecordLeaveRequest struct {
	LeaveTime *int64 `json:"leave_time,omitempty" validate:"omitempty,min=0"`
}

// UserListResponse wraps a name search result.
type UserListResponse struct {
	Users []domain.User `json:"users"`
}

// UserMatchResponse wraps a best-match lookup; User is null when nobody matched.
type UserMatchResponse struct {
	User *domain.User `json:"user"`
}

// HandleSaveUser handles POST /users.
func HandleSaveUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSaveUser); err != nil {
			return
		}

		ts := timestampOr(req.JoinTime)
		if err := svc.SaveUser(r.Context(), req.XUID, req.Name, ts); err != nil {
			respondServiceError(w, r, OpSaveUser, err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgUserSaved, "xuid", req.XUID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUserSaved})
	}
}

// HandleRecordLeave handles POST /users/{xuid}/leave.
func HandleRecordLeave(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		xuid, ok := GetPathParam(r, w, ParamXUID)
		if !ok {
			return
		}

		var req RecordLeaveRequest
		if r.ContentLength != 0 {
			if err := DecodeAndValidateRequest(r, w, &req, OpRecordLeave); err != nil {
				return
			}
		}

		if err := svc.UpdateLeaveTime(r.Context(), xuid, timestampOr(req.LeaveTime)); err != nil {
			respondServiceError(w, r, OpRecordLeave, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLeaveRecorded})
	}
}

// HandleGetUser handles GET /users/{xuid}.
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		xuid, ok := GetPathParam(r, w, ParamXUID)
		if !ok {
			return
		}

		u, err := svc.GetUser(r.Context(), xuid)
		if err != nil {
			respondServiceError(w, r, OpGetUser, err)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

// HandleFindUser handles GET /users/find?name=.
func HandleFindUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, ParamName)
		if !ok {
			return
		}

		u, err := svc.FindUserByName(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, OpFindUser, err)
			return
		}

		respondJSON(w, http.StatusOK, UserMatchResponse{User: u})
	}
}

// HandleSearchUsers handles GET /users/search?name=.
func HandleSearchUsers(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, ParamName)
		if !ok {
			return
		}

		users, err := svc.SearchUsersByName(r.Context(), name)
		if err != nil {
			respondServiceError(w, r, OpSearchUsers, err)
			return
		}

		respondJSON(w, http.StatusOK, UserListResponse{Users: users})
	}
}
