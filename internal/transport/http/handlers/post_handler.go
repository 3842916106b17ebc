package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/miniwall/internal/logger"
	"github.com/vedran77/miniwall/internal/service"
	"github.com/vedran77/miniwall/internal/transport/http/middleware"
	"github.com/vedran77/miniwall/pkg/validator"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var input service.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePost(input.Title, input.Body); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", errs.First())
		return
	}

	post, err := h.postService.Create(r.Context(), user.ID, input)
	if err != nil {
		logger.Log.Errorw("create post", "err", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Read(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.PathValue("post_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post id")
		return
	}

	post, err := h.postService.Get(r.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No post with id %s", postID))
		} else {
			logger.Log.Errorw("read post", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	postID, err := uuid.Parse(r.PathValue("post_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post id")
		return
	}

	var input service.UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePostUpdate(input.Title, input.Body); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", errs.First())
		return
	}

	post, err := h.postService.Update(r.Context(), user.ID, postID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No post with id %s", postID))
		case errors.Is(err, service.ErrNotPostOwner):
			writeError(w, http.StatusBadRequest, "NOT_OWNER", "Signed in user is not the post owner")
		default:
			logger.Log.Errorw("update post", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	postID, err := uuid.Parse(r.PathValue("post_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post id")
		return
	}

	deleted, err := h.postService.Delete(r.Context(), user.ID, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No post with id %s", postID))
		case errors.Is(err, service.ErrNotPostOwner):
			writeError(w, http.StatusBadRequest, "NOT_OWNER", "Signed in user is not the post owner")
		default:
			logger.Log.Errorw("delete post", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted_count": deleted})
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	scope, err := service.ParseScope(r.PathValue("scope"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_SCOPE", "Scope must be all or user")
		return
	}

	posts, err := h.postService.List(r.Context(), user.ID, scope)
	if err != nil {
		logger.Log.Errorw("list posts", "err", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}
