package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/miniwall/internal/domain"
)

// Response views. Hydrated relations appear as nested objects while plain
// create/update responses stick to the stored reference ids, so the two
// shapes never share a struct.

type PostView struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Owner     *domain.Profile `json:"owner,omitempty"`
	NLikes    *int            `json:"n_likes,omitempty"`
	Comments  []CommentView   `json:"comments,omitempty"`
	Likes     []LikeView      `json:"likes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type CommentView struct {
	ID        uuid.UUID       `json:"id"`
	Post      *PostView       `json:"post,omitempty"`
	Body      string          `json:"body"`
	Author    *domain.Profile `json:"author,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type LikeView struct {
	ID        uuid.UUID       `json:"id"`
	Post      *PostView       `json:"post,omitempty"`
	Backer    *domain.Profile `json:"backer,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func postSummary(p *domain.Post) *PostView {
	if p == nil {
		return nil
	}
	return &PostView{
		ID:        p.ID,
		Title:     p.Title,
		Body:      p.Body,
		Owner:     p.Owner,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func commentView(c *domain.Comment, withPost, withAuthor bool) CommentView {
	view := CommentView{
		ID:        c.ID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if withPost {
		view.Post = postSummary(c.Post)
	}
	if withAuthor {
		view.Author = c.Author
	}
	return view
}

func likeView(l *domain.Like, withPost, withBacker bool) LikeView {
	view := LikeView{
		ID:        l.ID,
		CreatedAt: l.CreatedAt,
	}
	if withPost {
		view.Post = postSummary(l.Post)
	}
	if withBacker {
		view.Backer = l.Backer
	}
	return view
}
