package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/miniwall/internal/domain"
)

type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func (r *PostRepo) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (id, title, body, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Body, post.OwnerID, post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (r *PostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	query := `
		SELECT p.id, p.title, p.body, p.owner_id, p.created_at, p.updated_at,
			u.screen_name, u.created_at
		FROM posts p
		JOIN users u ON p.owner_id = u.id
		WHERE p.id = $1`
	var p domain.Post
	var owner domain.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Body, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
		&owner.ScreenName, &owner.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Owner = &owner
	return &p, nil
}

func (r *PostRepo) Update(ctx context.Context, post *domain.Post) error {
	query := `UPDATE posts SET title = $1, body = $2, updated_at = $3 WHERE id = $4`
	_, err := r.pool.Exec(ctx, query, post.Title, post.Body, post.UpdatedAt, post.ID)
	return err
}

// Delete removes the post and its dependent comments and likes as a single
// transaction. Either everything is deleted or nothing is, so a deleted
// post can never leave surviving comments or likes behind.
func (r *PostRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE post_id = $1`, id); err != nil {
		return 0, fmt.Errorf("deleting comments: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM likes WHERE post_id = $1`, id); err != nil {
		return 0, fmt.Errorf("deleting likes: %w", err)
	}

	ct, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting post: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing delete: %w", err)
	}

	return ct.RowsAffected(), nil
}

func (r *PostRepo) ListRanked(ctx context.Context, ownerID *uuid.UUID) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.title, p.body, p.owner_id, p.created_at, p.updated_at,
			u.screen_name, u.created_at, count(l.id)
		FROM posts p
		JOIN users u ON p.owner_id = u.id
		LEFT JOIN likes l ON l.post_id = p.id`
	var args []any
	if ownerID != nil {
		query += ` WHERE p.owner_id = $1`
		args = append(args, *ownerID)
	}
	query += ` GROUP BY p.id, u.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		var owner domain.Profile
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Body, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
			&owner.ScreenName, &owner.CreatedAt, &p.NLikes,
		); err != nil {
			return nil, err
		}
		p.Owner = &owner
		posts = append(posts, p)
	}

	return posts, rows.Err()
}
