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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	postID, err := uuid.Parse(r.PathValue("post_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid post id")
		return
	}

	var input service.WriteCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateComment(input.Body); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", errs.First())
		return
	}

	comment, err := h.commentService.Create(r.Context(), user.ID, postID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No post with id %s", postID))
		case errors.Is(err, service.ErrIsPostOwner):
			writeError(w, http.StatusBadRequest, "IS_OWNER", "Signed in user is the post owner")
		default:
			logger.Log.Errorw("create comment", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Read(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(r.PathValue("comment_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid comment id")
		return
	}

	comment, err := h.commentService.Get(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No comment with id %s", commentID))
		} else {
			logger.Log.Errorw("read comment", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	commentID, err := uuid.Parse(r.PathValue("comment_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid comment id")
		return
	}

	var input service.WriteCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateComment(input.Body); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", errs.First())
		return
	}

	comment, err := h.commentService.Update(r.Context(), user.ID, commentID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No comment with id %s", commentID))
		case errors.Is(err, service.ErrNotCommentAuthor):
			writeError(w, http.StatusBadRequest, "NOT_AUTHOR", "Signed in user is not the comment author")
		default:
			logger.Log.Errorw("update comment", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	commentID, err := uuid.Parse(r.PathValue("comment_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid comment id")
		return
	}

	deleted, err := h.commentService.Delete(r.Context(), user.ID, commentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			writeError(w, http.StatusBadRequest, "NOT_FOUND", fmt.Sprintf("No comment with id %s", commentID))
		case errors.Is(err, service.ErrNotCommentAuthor):
			writeError(w, http.StatusBadRequest, "NOT_AUTHOR", "Signed in user is not the comment author")
		default:
			logger.Log.Errorw("delete comment", "err", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted_count": deleted})
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	scope, err := service.ParseScope(r.PathValue("scope"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_SCOPE", "Scope must be all or user")
		return
	}

	comments, err := h.commentService.List(r.Context(), user.ID, scope)
	if err != nil {
		logger.Log.Errorw("list comments", "err", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, comments)
}
