package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/miniwall/internal/domain"
)

// ErrDuplicateKey is returned when an insert trips a unique index
// (users.email or likes(post_id, backer_id)). The index, not an
// application-level pre-check, is what closes concurrent duplicate races.
var ErrDuplicateKey = errors.New("duplicate key")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	// Delete removes the post together with its comments and likes in one
	// transaction and reports how many posts were deleted.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// ListRanked returns posts with hydrated owner profiles and like
	// counts. Filtered to one owner when ownerID is set. Order is
	// unspecified; ranking happens in the service.
	ListRanked(ctx context.Context, ownerID *uuid.UUID) ([]domain.Post, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)
	List(ctx context.Context, authorID *uuid.UUID) ([]domain.Comment, error)
}

type LikeRepository interface {
	Create(ctx context.Context, like *domain.Like) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Like, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Like, error)
	List(ctx context.Context, backerID *uuid.UUID) ([]domain.Like, error)
}
