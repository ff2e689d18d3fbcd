package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/go-posts/internal/model"
	"github.com/deppfellow/go-posts/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postsTable = "posts"

// PostStore is the persistence contract the post service depends on.
//
// Lookups of an unknown id return an error wrapping pgx.ErrNoRows (see
// sqlerr.NotFound), whichever implementation is in use.
type PostStore interface {
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	FindAll(ctx context.Context) ([]*model.Post, error)
	// Save inserts a post with a zero ID and assigns its new ID, otherwise
	// it rewrites the title and description of the existing row.
	Save(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, post *model.Post) error
}

// PostRepository is the PostgreSQL PostStore.
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	stmt := `
		SELECT
			id,
			title,
			description,
			created_at
		FROM
			posts
		WHERE
			id = @id
	`

	rows, err := r.pool.Query(ctx, stmt, pgx.NamedArgs{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get post query for id=%d: %w", id, err)
	}

	post, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Post])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sqlerr.NotFound(postsTable)
		}
		return nil, fmt.Errorf("failed to collect row from table:posts for id=%d: %w", id, err)
	}

	return post, nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]*model.Post, error) {
	stmt := `
		SELECT
			id,
			title,
			description,
			created_at
		FROM
			posts
		ORDER BY
			id ASC
	`

	rows, err := r.pool.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list posts query: %w", err)
	}

	posts, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[model.Post])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) Save(ctx context.Context, post *model.Post) error {
	if !post.IsPersisted() {
		return r.insert(ctx, post)
	}
	return r.update(ctx, post)
}

func (r *PostRepository) insert(ctx context.Context, post *model.Post) error {
	stmt := `
		INSERT INTO
			posts (title, description, created_at)
		VALUES
			(@title, @description, @created_at)
		RETURNING
			id
	`

	err := r.pool.QueryRow(ctx, stmt, pgx.NamedArgs{
		"title":       post.Title,
		"description": post.Description,
		"created_at":  post.CreatedAt,
	}).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// update never touches id or created_at.
func (r *PostRepository) update(ctx context.Context, post *model.Post) error {
	stmt := `
		UPDATE posts
		SET
			title = @title,
			description = @description
		WHERE
			id = @id
	`

	tag, err := r.pool.Exec(ctx, stmt, pgx.NamedArgs{
		"id":          post.ID,
		"title":       post.Title,
		"description": post.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to update post id=%d: %w", post.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(postsTable)
	}

	return nil
}

func (r *PostRepository) Delete(ctx context.Context, post *model.Post) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = @id`, pgx.NamedArgs{
		"id": post.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete post id=%d: %w", post.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(postsTable)
	}

	return nil
}
