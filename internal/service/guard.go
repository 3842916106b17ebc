package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/miniwall/internal/domain"
)

var (
	ErrNotPostOwner     = errors.New("signed in user is not the post owner")
	ErrIsPostOwner      = errors.New("signed in user is the post owner")
	ErrNotCommentAuthor = errors.New("signed in user is not the comment author")
	ErrNotLikeBacker    = errors.New("signed in user is not the like backer")
)

// Ownership predicates. Pure comparisons, no store access; every service
// runs the relevant one after loading a resource and before mutating it.

func verifyPostOwner(post *domain.Post, userID uuid.UUID) error {
	if post.OwnerID != userID {
		return ErrNotPostOwner
	}
	return nil
}

func verifyNotPostOwner(post *domain.Post, userID uuid.UUID) error {
	if post.OwnerID == userID {
		return ErrIsPostOwner
	}
	return nil
}

func verifyCommentAuthor(comment *domain.Comment, userID uuid.UUID) error {
	if comment.AuthorID != userID {
		return ErrNotCommentAuthor
	}
	return nil
}

func verifyLikeBacker(like *domain.Like, userID uuid.UUID) error {
	if like.BackerID != userID {
		return ErrNotLikeBacker
	}
	return nil
}
