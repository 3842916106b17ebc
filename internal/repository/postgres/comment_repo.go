package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/miniwall/internal/domain"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

// selectComment joins the parent post, the post owner and the comment
// author so a single query hydrates everything a response needs.
const selectComment = `
	SELECT c.id, c.post_id, c.body, c.author_id, c.created_at, c.updated_at,
		p.id, p.title, p.body, p.owner_id, p.created_at, p.updated_at,
		po.screen_name, po.created_at,
		a.screen_name, a.created_at
	FROM comments c
	JOIN posts p ON c.post_id = p.id
	JOIN users po ON p.owner_id = po.id
	JOIN users a ON c.author_id = a.id`

func (r *CommentRepo) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, body, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		comment.ID, comment.PostID, comment.Body, comment.AuthorID,
		comment.CreatedAt, comment.UpdatedAt,
	)
	return err
}

func (r *CommentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	row := r.pool.QueryRow(ctx, selectComment+` WHERE c.id = $1`, id)
	c, err := scanComment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepo) Update(ctx context.Context, comment *domain.Comment) error {
	query := `UPDATE comments SET body = $1, updated_at = $2 WHERE id = $3`
	_, err := r.pool.Exec(ctx, query, comment.Body, comment.UpdatedAt, comment.ID)
	return err
}

func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *CommentRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	return r.list(ctx, ` WHERE c.post_id = $1 ORDER BY c.created_at ASC`, postID)
}

func (r *CommentRepo) List(ctx context.Context, authorID *uuid.UUID) ([]domain.Comment, error) {
	if authorID != nil {
		return r.list(ctx, ` WHERE c.author_id = $1 ORDER BY c.created_at ASC`, *authorID)
	}
	return r.list(ctx, ` ORDER BY c.created_at ASC`)
}

func (r *CommentRepo) list(ctx context.Context, suffix string, args ...any) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, selectComment+suffix, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}

	return comments, rows.Err()
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	var p domain.Post
	var owner, author domain.Profile
	err := row.Scan(
		&c.ID, &c.PostID, &c.Body, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
		&p.ID, &p.Title, &p.Body, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
		&owner.ScreenName, &owner.CreatedAt,
		&author.ScreenName, &author.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Owner = &owner
	c.Post = &p
	c.Author = &author
	return &c, nil
}
