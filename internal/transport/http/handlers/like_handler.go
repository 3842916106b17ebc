package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/miniwall/internal/logger"
	"github.com/vedran77/miniwall/internal/service"
	"github.com/vedran77/miniwall/internal/transport/http/middleware"
)

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	postID, err := uuid.Parse(r.PathValue("post_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post id")
		return
	}

	like, err := h.likeService.Create(r.Context(), user.ID, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No post with id %s", postID))
		case errors.Is(err, service.ErrIsPostOwner):
			writeError(w, http.StatusBadRequest, "IS_OWNER", "Signed in user is the post owner")
		case errors.Is(err, service.ErrAlreadyLiked):
			writeError(w, http.StatusBadRequest, "ALREADY_LIKED", "User has already liked post")
		default:
			logger.Log.Errorw("create like", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, like)
}

func (h *LikeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	likeID, err := uuid.Parse(r.PathValue("like_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid like id")
		return
	}

	deleted, err := h.likeService.Delete(r.Context(), user.ID, likeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLikeNotFound):
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No like with id %s", likeID))
		case errors.Is(err, service.ErrNotLikeBacker):
			writeError(w, http.StatusBadRequest, "NOT_BACKER", "Signed in user is not the like backer")
		default:
			logger.Log.Errorw("delete like", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted_count": deleted})
}

func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	scope, err := service.ParseScope(r.PathValue("scope"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_SCOPE", "Scope must be all or user")
		return
	}

	likes, err := h.likeService.List(r.Context(), user.ID, scope)
	if err != nil {
		logger.Log.Errorw("list likes", "err", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, likes)
}
