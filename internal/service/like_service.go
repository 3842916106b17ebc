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

var (
	ErrLikeNotFound = errors.New("like not found")
	ErrAlreadyLiked = errors.New("user has already liked post")
)

type LikeService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
}

func NewLikeService(likeRepo repository.LikeRepository, postRepo repository.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// Create backs someone else's post. Liking your own post is rejected with
// ErrIsPostOwner; liking the same post twice with ErrAlreadyLiked.
func (s *LikeService) Create(ctx context.Context, userID, postID uuid.UUID) (*domain.Like, error) {
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

	like := &domain.Like{
		ID:        uuid.New(),
		PostID:    postID,
		BackerID:  userID,
		CreatedAt: time.Now(),
	}

	if err := s.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, fmt.Errorf("creating like: %w", err)
	}

	return like, nil
}

func (s *LikeService) Delete(ctx context.Context, userID, likeID uuid.UUID) (int64, error) {
	like, err := s.likeRepo.GetByID(ctx, likeID)
	if err != nil {
		return 0, err
	}
	if like == nil {
		return 0, ErrLikeNotFound
	}

	if err := verifyLikeBacker(like, userID); err != nil {
		return 0, err
	}

	return s.likeRepo.Delete(ctx, likeID)
}

// List returns likes in creation order with their post (and its owner)
// hydrated. The user scope filters to the viewer's likes and omits the
// backer profile, since every backer is the viewer.
func (s *LikeService) List(ctx context.Context, viewerID uuid.UUID, scope Scope) ([]LikeView, error) {
	var backerID *uuid.UUID
	if scope == ScopeUser {
		backerID = &viewerID
	}

	likes, err := s.likeRepo.List(ctx, backerID)
	if err != nil {
		return nil, err
	}

	views := make([]LikeView, 0, len(likes))
	for i := range likes {
		views = append(views, likeView(&likes[i], true, scope == ScopeAll))
	}

	return views, nil
}
