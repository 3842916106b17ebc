package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/miniwall/internal/domain"
	"github.com/vedran77/miniwall/internal/repository"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, likeRepo repository.LikeRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

type CreatePostInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type UpdatePostInput struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

func (s *PostService) Create(ctx context.Context, ownerID uuid.UUID, input CreatePostInput) (*domain.Post, error) {
	now := time.Now()
	post := &domain.Post{
		ID:        uuid.New(),
		Title:     input.Title,
		Body:      input.Body,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	return post, nil
}

// Get returns the post hydrated with its owner profile, its comments and
// likes in creation order, and the derived like count.
func (s *PostService) Get(ctx context.Context, postID uuid.UUID) (*PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	likes, err := s.likeRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	view := postSummary(post)
	nLikes := len(likes)
	view.NLikes = &nLikes
	for i := range comments {
		view.Comments = append(view.Comments, commentView(&comments[i], false, true))
	}
	for i := range likes {
		view.Likes = append(view.Likes, likeView(&likes[i], false, true))
	}

	return view, nil
}

func (s *PostService) Update(ctx context.Context, userID, postID uuid.UUID, input UpdatePostInput) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if err := verifyPostOwner(post, userID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	post.UpdatedAt = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	return post, nil
}

// Delete removes the post and cascades over its comments and likes,
// reporting how many posts were removed. A concurrent second delete of the
// same id simply reports zero.
func (s *PostService) Delete(ctx context.Context, userID, postID uuid.UUID) (int64, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, ErrPostNotFound
	}

	if err := verifyPostOwner(post, userID); err != nil {
		return 0, err
	}

	return s.postRepo.Delete(ctx, postID)
}

// List returns posts ranked by like count, most liked first; posts with
// equal counts keep creation order, earliest first. The user scope filters
// to the viewer's posts and drops the owner profile from each entry.
func (s *PostService) List(ctx context.Context, viewerID uuid.UUID, scope Scope) ([]PostView, error) {
	var ownerID *uuid.UUID
	if scope == ScopeUser {
		ownerID = &viewerID
	}

	posts, err := s.postRepo.ListRanked(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].NLikes != posts[j].NLikes {
			return posts[i].NLikes > posts[j].NLikes
		}
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})

	views := make([]PostView, 0, len(posts))
	for i := range posts {
		view := postSummary(&posts[i])
		nLikes := posts[i].NLikes
		view.NLikes = &nLikes
		if scope == ScopeUser {
			view.Owner = nil
		}
		views = append(views, *view)
	}

	return views, nil
}
