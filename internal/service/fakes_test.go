package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/miniwall/internal/domain"
	"github.com/vedran77/miniwall/internal/repository"
)

// memStore backs in-memory fakes of the repository interfaces so services
// can be exercised without a database. Hydration mirrors what the SQL
// joins produce.
type memStore struct {
	users    map[uuid.UUID]*domain.User
	posts    map[uuid.UUID]*domain.Post
	comments map[uuid.UUID]*domain.Comment
	likes    map[uuid.UUID]*domain.Like
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]*domain.User),
		posts:    make(map[uuid.UUID]*domain.Post),
		comments: make(map[uuid.UUID]*domain.Comment),
		likes:    make(map[uuid.UUID]*domain.Like),
	}
}

func (s *memStore) addUser(screenName, email string) *domain.User {
	u := &domain.User{
		ID:         uuid.New(),
		ScreenName: screenName,
		Email:      email,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addPost(owner *domain.User, title string, createdAt time.Time) *domain.Post {
	p := &domain.Post{
		ID:        uuid.New(),
		Title:     title,
		Body:      "body of " + title,
		OwnerID:   owner.ID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	s.posts[p.ID] = p
	return p
}

func (s *memStore) hydratePost(p *domain.Post) *domain.Post {
	cp := *p
	if owner, ok := s.users[p.OwnerID]; ok {
		cp.Owner = owner.Profile()
	}
	return &cp
}

type fakeUserRepo struct{ s *memStore }

func (r fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakePostRepo struct{ s *memStore }

func (r fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	cp := *post
	r.s.posts[post.ID] = &cp
	return nil
}

func (r fakePostRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Post, error) {
	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	return r.s.hydratePost(p), nil
}

func (r fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	stored, ok := r.s.posts[post.ID]
	if !ok {
		return nil
	}
	stored.Title = post.Title
	stored.Body = post.Body
	stored.UpdatedAt = post.UpdatedAt
	return nil
}

func (r fakePostRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
		}
	}
	for lid, l := range r.s.likes {
		if l.PostID == id {
			delete(r.s.likes, lid)
		}
	}
	if _, ok := r.s.posts[id]; !ok {
		return 0, nil
	}
	delete(r.s.posts, id)
	return 1, nil
}

func (r fakePostRepo) ListRanked(_ context.Context, ownerID *uuid.UUID) ([]domain.Post, error) {
	var posts []domain.Post
	for _, p := range r.s.posts {
		if ownerID != nil && p.OwnerID != *ownerID {
			continue
		}
		cp := r.s.hydratePost(p)
		for _, l := range r.s.likes {
			if l.PostID == p.ID {
				cp.NLikes++
			}
		}
		posts = append(posts, *cp)
	}
	return posts, nil
}

type fakeCommentRepo struct{ s *memStore }

func (r fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	cp := *comment
	r.s.comments[comment.ID] = &cp
	return nil
}

func (r fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
	c, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	return r.hydrate(c), nil
}

func (r fakeCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	stored, ok := r.s.comments[comment.ID]
	if !ok {
		return nil
	}
	stored.Body = comment.Body
	stored.UpdatedAt = comment.UpdatedAt
	return nil
}

func (r fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.s.comments[id]; !ok {
		return 0, nil
	}
	delete(r.s.comments, id)
	return 1, nil
}

func (r fakeCommentRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	var comments []domain.Comment
	for _, c := range r.s.comments {
		if c.PostID == postID {
			comments = append(comments, *r.hydrate(c))
		}
	}
	sortByCreation(comments, func(c domain.Comment) time.Time { return c.CreatedAt })
	return comments, nil
}

func (r fakeCommentRepo) List(_ context.Context, authorID *uuid.UUID) ([]domain.Comment, error) {
	var comments []domain.Comment
	for _, c := range r.s.comments {
		if authorID != nil && c.AuthorID != *authorID {
			continue
		}
		comments = append(comments, *r.hydrate(c))
	}
	sortByCreation(comments, func(c domain.Comment) time.Time { return c.CreatedAt })
	return comments, nil
}

func (r fakeCommentRepo) hydrate(c *domain.Comment) *domain.Comment {
	cp := *c
	if author, ok := r.s.users[c.AuthorID]; ok {
		cp.Author = author.Profile()
	}
	if post, ok := r.s.posts[c.PostID]; ok {
		cp.Post = r.s.hydratePost(post)
	}
	return &cp
}

type fakeLikeRepo struct{ s *memStore }

func (r fakeLikeRepo) Create(_ context.Context, like *domain.Like) error {
	for _, l := range r.s.likes {
		if l.PostID == like.PostID && l.BackerID == like.BackerID {
			return repository.ErrDuplicateKey
		}
	}
	cp := *like
	r.s.likes[like.ID] = &cp
	return nil
}

func (r fakeLikeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Like, error) {
	l, ok := r.s.likes[id]
	if !ok {
		return nil, nil
	}
	return r.hydrate(l), nil
}

func (r fakeLikeRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.s.likes[id]; !ok {
		return 0, nil
	}
	delete(r.s.likes, id)
	return 1, nil
}

func (r fakeLikeRepo) ListByPost(_ context.Context, postID uuid.UUID) ([]domain.Like, error) {
	var likes []domain.Like
	for _, l := range r.s.likes {
		if l.PostID == postID {
			likes = append(likes, *r.hydrate(l))
		}
	}
	sortByCreation(likes, func(l domain.Like) time.Time { return l.CreatedAt })
	return likes, nil
}

func (r fakeLikeRepo) List(_ context.Context, backerID *uuid.UUID) ([]domain.Like, error) {
	var likes []domain.Like
	for _, l := range r.s.likes {
		if backerID != nil && l.BackerID != *backerID {
			continue
		}
		likes = append(likes, *r.hydrate(l))
	}
	sortByCreation(likes, func(l domain.Like) time.Time { return l.CreatedAt })
	return likes, nil
}

func (r fakeLikeRepo) hydrate(l *domain.Like) *domain.Like {
	cp := *l
	if backer, ok := r.s.users[l.BackerID]; ok {
		cp.Backer = backer.Profile()
	}
	if post, ok := r.s.posts[l.PostID]; ok {
		cp.Post = r.s.hydratePost(post)
	}
	return &cp
}

func sortByCreation[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).Before(createdAt(items[j]))
	})
}
