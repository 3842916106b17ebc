package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/miniwall/internal/domain"
	"github.com/vedran77/miniwall/internal/repository"
)

type LikeRepo struct {
	pool *pgxpool.Pool
}

func NewLikeRepo(pool *pgxpool.Pool) *LikeRepo {
	return &LikeRepo{pool: pool}
}

const selectLike = `
	SELECT l.id, l.post_id, l.backer_id, l.created_at,
		p.id, p.title, p.body, p.owner_id, p.created_at, p.updated_at,
		po.screen_name, po.created_at,
		b.screen_name, b.created_at
	FROM likes l
	JOIN posts p ON l.post_id = p.id
	JOIN users po ON p.owner_id = po.id
	JOIN users b ON l.backer_id = b.id`

// Create relies on the unique index over (post_id, backer_id): a second
// like by the same user on the same post comes back as ErrDuplicateKey.
func (r *LikeRepo) Create(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (id, post_id, backer_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query,
		like.ID, like.PostID, like.BackerID, like.CreatedAt,
	)
	if isUniqueViolation(err) {
		return repository.ErrDuplicateKey
	}
	return err
}

func (r *LikeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Like, error) {
	row := r.pool.QueryRow(ctx, selectLike+` WHERE l.id = $1`, id)
	l, err := scanLike(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LikeRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM likes WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

func (r *LikeRepo) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Like, error) {
	return r.list(ctx, ` WHERE l.post_id = $1 ORDER BY l.created_at ASC`, postID)
}

func (r *LikeRepo) List(ctx context.Context, backerID *uuid.UUID) ([]domain.Like, error) {
	if backerID != nil {
		return r.list(ctx, ` WHERE l.backer_id = $1 ORDER BY l.created_at ASC`, *backerID)
	}
	return r.list(ctx, ` ORDER BY l.created_at ASC`)
}

func (r *LikeRepo) list(ctx context.Context, suffix string, args ...any) ([]domain.Like, error) {
	rows, err := r.pool.Query(ctx, selectLike+suffix, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var likes []domain.Like
	for rows.Next() {
		l, err := scanLike(rows)
		if err != nil {
			return nil, err
		}
		likes = append(likes, *l)
	}

	return likes, rows.Err()
}

func scanLike(row pgx.Row) (*domain.Like, error) {
	var l domain.Like
	var p domain.Post
	var owner, backer domain.Profile
	err := row.Scan(
		&l.ID, &l.PostID, &l.BackerID, &l.CreatedAt,
		&p.ID, &p.Title, &p.Body, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
		&owner.ScreenName, &owner.CreatedAt,
		&backer.ScreenName, &backer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Owner = &owner
	l.Post = &p
	l.Backer = &backer
	return &l, nil
}
