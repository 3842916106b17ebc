package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/miniwall/internal/domain"
	"github.com/vedran77/miniwall/internal/repository"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

type WriteCommentInput struct {
	Body string `json:"body"`
}

// Create adds a comment to someone else's post. The post owner commenting
// on their own post is rejected with ErrIsPostOwner.
func (s *CommentService) Create(ctx context.Context, userID, postID uuid.UUID, input WriteCommentInput) (*domain.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := verifyNotPostOwner(post, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		Body:      input.Body,
		AuthorID:  userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	return comment, nil
}

// Get returns the comment hydrated two levels deep: comment, its post, and
// the post's owner, plus the author profile.
func (s *CommentService) Get(ctx context.Context, commentID uuid.UUID) (*CommentView, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	view := commentView(comment, true, true)
	return &view, nil
}

func (s *CommentService) Update(ctx context.Context, userID, commentID uuid.UUID, input WriteCommentInput) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	if err := verifyCommentAuthor(comment, userID); err != nil {
		return nil, err
	}

	comment.Body = input.Body
	comment.UpdatedAt = time.Now()

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, userID, commentID uuid.UUID) (int64, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil {
		return 0, ErrCommentNotFound
	}

	if err := verifyCommentAuthor(comment, userID); err != nil {
		return 0, err
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// List returns comments in creation order with their post (and its owner)
// hydrated. The user scope filters to the viewer's comments and omits the
// author profile, since every author is the viewer.
func (s *CommentService) List(ctx context.Context, viewerID uuid.UUID, scope Scope) ([]CommentView, error) {
	var authorID *uuid.UUID
	if scope == ScopeUser {
		authorID = &viewerID
	}

	comments, err := s.commentRepo.List(ctx, authorID)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, commentView(&comments[i], true, scope == ScopeAll))
	}

	return views, nil
}
