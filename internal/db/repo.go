package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

// BlogRepo is the persistence contract consumed by the blogadmin manager.
type BlogRepo interface {
	Ping(ctx context.Context) error
	Close() error
	Blogs(ctx context.Context) ([]Blog, error)
	BlogBySlug(ctx context.Context, slug string) (*Blog, error)
	BlogByID(ctx context.Context, blogID int) (*Blog, error)
	CreateBlog(ctx context.Context, blog *Blog) (*Blog, error)
	ReplaceBlogBySlug(ctx context.Context, slug string, blog *Blog) (*Blog, error)
	UpdateBlogByID(ctx context.Context, blogID int, blog *Blog, columns []string) (*Blog, error)
	DeleteBlogBySlug(ctx context.Context, slug string) (int, error)
	DeleteBlogByID(ctx context.Context, blogID int) (int, error)
}

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Blogs retrieves all blogs in store order, no filtering or pagination.
func (r *Repository) Blogs(ctx context.Context) ([]Blog, error) {
	var blogs []Blog
	err := r.db.ModelContext(ctx, &blogs).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}

	return blogs, nil
}

func (r *Repository) BlogBySlug(ctx context.Context, slug string) (*Blog, error) {
	blog := &Blog{}
	err := r.db.ModelContext(ctx, blog).
		Where(`"slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get blog by slug: %w", err)
	}

	return blog, nil
}

func (r *Repository) BlogByID(ctx context.Context, blogID int) (*Blog, error) {
	blog := &Blog{}
	err := r.db.ModelContext(ctx, blog).
		Where(`"blogId" = ?`, blogID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get blog by id: %w", err)
	}

	return blog, nil
}

// CreateBlog inserts a new blog and assigns createdAt. Categories and tags
// are stored as empty arrays, never NULL.
func (r *Repository) CreateBlog(ctx context.Context, blog *Blog) (*Blog, error) {
	blog.CreatedAt = time.Now()
	if blog.Categories == nil {
		blog.Categories = []string{}
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	_, err := r.db.ModelContext(ctx, blog).
		Returning("*").
		Insert()

	if err != nil {
		return nil, fmt.Errorf("failed to insert blog: %w", err)
	}

	return blog, nil
}

// ReplaceBlogBySlug overwrites all editable columns of the blog with the
// given slug. Omitted values in blog are written as-is, empty included.
// Returns nil when no blog with the slug exists.
func (r *Repository) ReplaceBlogBySlug(ctx context.Context, slug string, blog *Blog) (*Blog, error) {
	if blog.Categories == nil {
		blog.Categories = []string{}
	}
	if blog.Tags == nil {
		blog.Tags = []string{}
	}

	res, err := r.db.ModelContext(ctx, blog).
		Column(
			Columns.Blog.Title,
			Columns.Blog.ShortDescription,
			Columns.Blog.Content,
			Columns.Blog.Author,
			Columns.Blog.Image,
			Columns.Blog.Categories,
			Columns.Blog.Tags,
		).
		Where(`"slug" = ?`, slug).
		Returning("*").
		Update()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to update blog by slug: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, nil
	}

	return blog, nil
}

// UpdateBlogByID writes only the given columns of blog to the row with
// blogID. A missing row surfaces as pg.ErrNoRows, matching other store
// failures rather than the slug-addressed not-found path.
func (r *Repository) UpdateBlogByID(ctx context.Context, blogID int, blog *Blog, columns []string) (*Blog, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("no columns to update for blog %d", blogID)
	}

	res, err := r.db.ModelContext(ctx, blog).
		Column(columns...).
		Where(`"blogId" = ?`, blogID).
		Returning("*").
		Update()

	if errors.Is(err, pg.ErrNoRows) || (err == nil && res.RowsAffected() == 0) {
		return nil, fmt.Errorf("failed to update blog %d: %w", blogID, pg.ErrNoRows)
	} else if err != nil {
		return nil, fmt.Errorf("failed to update blog by id: %w", err)
	}

	return blog, nil
}

func (r *Repository) DeleteBlogBySlug(ctx context.Context, slug string) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Blog)(nil)).
		Where(`"slug" = ?`, slug).
		Delete()

	if err != nil {
		return 0, fmt.Errorf("failed to delete blog by slug: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) DeleteBlogByID(ctx context.Context, blogID int) (int, error) {
	res, err := r.db.ModelContext(ctx, (*Blog)(nil)).
		Where(`"blogId" = ?`, blogID).
		Delete()

	if err != nil {
		return 0, fmt.Errorf("failed to delete blog by id: %w", err)
	}

	return res.RowsAffected(), nil
}
