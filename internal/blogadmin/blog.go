package blogadmin

import (
	"context"
	"fmt"

	"github.com/ekaraca/blog-admin/internal/db"
	"github.com/ekaraca/blog-admin/internal/media"
)

// Manager is the orchestration core between the HTTP layer, the blog store
// and the media host. Every operation runs validate, then the optional
// upload, then exactly one store call sequence, strictly in that order.
type Manager struct {
	db     db.BlogRepo
	media  media.Uploader
	folder string
}

func NewBlogManager(repo db.BlogRepo, uploader media.Uploader, folder string) *Manager {
	return &Manager{
		db:     repo,
		media:  uploader,
		folder: folder,
	}
}

// Blogs retrieves all blogs in whatever order the store returns them.
func (m *Manager) Blogs(ctx context.Context) ([]Blog, error) {
	dbBlogs, err := m.db.Blogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get blogs: %w", err)
	}

	return NewBlogs(dbBlogs), nil
}

// BlogBySlug retrieves a single blog by slug. Returns nil when no blog
// matches.
func (m *Manager) BlogBySlug(ctx context.Context, slug string) (*Blog, error) {
	dbBlog, err := m.db.BlogBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get blog by slug: %w", err)
	} else if dbBlog == nil {
		return nil, nil
	}

	blog := NewBlog(dbBlog)
	return &blog, nil
}

// CreateBlog uploads the required image attachment, then persists a new blog
// with readCount 0 and the hosted image URL. The upload happens before any
// store write; a hosted image is not removed again when the insert fails.
func (m *Manager) CreateBlog(ctx context.Context, draft BlogDraft, image *ImageUpload) (*Blog, error) {
	if image == nil {
		return nil, &ValidationError{Field: "file"}
	}
	if draft.Title == "" {
		return nil, &ValidationError{Field: "title"}
	}
	if draft.Content == "" {
		return nil, &ValidationError{Field: "content"}
	}
	if draft.Author == "" {
		return nil, &ValidationError{Field: "author"}
	}

	imageURL, err := m.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	dbBlog := &db.Blog{
		Slug:             draft.Slug,
		Title:            draft.Title,
		ShortDescription: draft.ShortDescription,
		Content:          draft.Content,
		Author:           draft.Author,
		Image:            &imageURL,
		Categories:       draft.Categories,
		Tags:             draft.Tags,
		ReadCount:        0,
	}

	created, err := m.db.CreateBlog(ctx, dbBlog)
	if err != nil {
		return nil, fmt.Errorf("db create blog: %w", err)
	}

	blog := NewBlog(created)
	return &blog, nil
}

// UpdateBlogBySlug replaces every editable field of the blog with the given
// slug. Omitted draft fields overwrite stored values with empty ones; only
// the image is preserved when no new attachment is sent. The existence check
// runs before any upload.
func (m *Manager) UpdateBlogBySlug(ctx context.Context, slug string, draft BlogDraft, image *ImageUpload) (*Blog, error) {
	existing, err := m.db.BlogBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get blog by slug: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	imageURL := existing.Image
	if image != nil {
		url, err := m.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	dbBlog := &db.Blog{
		Title:            draft.Title,
		ShortDescription: draft.ShortDescription,
		Content:          draft.Content,
		Author:           draft.Author,
		Image:            imageURL,
		Categories:       draft.Categories,
		Tags:             draft.Tags,
	}

	updated, err := m.db.ReplaceBlogBySlug(ctx, slug, dbBlog)
	if err != nil {
		return nil, fmt.Errorf("db update blog by slug: %w", err)
	} else if updated == nil {
		// Row disappeared between the existence check and the write.
		return nil, ErrNotFound
	}

	blog := NewBlog(updated)
	return &blog, nil
}

// PatchBlog applies only the fields present in patch to the blog with the
// given id. An attachment, when present, is uploaded and replaces the image;
// otherwise the image column stays out of the write set entirely.
func (m *Manager) PatchBlog(ctx context.Context, blogID int, patch BlogPatch, image *ImageUpload) (*Blog, error) {
	dbBlog := &db.Blog{}
	var columns []string

	if patch.Title != nil {
		dbBlog.Title = *patch.Title
		columns = append(columns, db.Columns.Blog.Title)
	}
	if patch.ShortDescription != nil {
		dbBlog.ShortDescription = *patch.ShortDescription
		columns = append(columns, db.Columns.Blog.ShortDescription)
	}
	if patch.Content != nil {
		dbBlog.Content = *patch.Content
		columns = append(columns, db.Columns.Blog.Content)
	}
	if patch.Author != nil {
		dbBlog.Author = *patch.Author
		columns = append(columns, db.Columns.Blog.Author)
	}
	if patch.Categories != nil {
		dbBlog.Categories = patch.Categories
		columns = append(columns, db.Columns.Blog.Categories)
	}
	if patch.Tags != nil {
		dbBlog.Tags = patch.Tags
		columns = append(columns, db.Columns.Blog.Tags)
	}

	if image != nil {
		url, err := m.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		dbBlog.Image = &url
		columns = append(columns, db.Columns.Blog.Image)
	}

	if len(columns) == 0 {
		// Nothing to write; behave like an empty update and return the
		// current record.
		existing, err := m.db.BlogByID(ctx, blogID)
		if err != nil {
			return nil, fmt.Errorf("db get blog by id: %w", err)
		} else if existing == nil {
			return nil, fmt.Errorf("db update blog %d: no matching row", blogID)
		}
		blog := NewBlog(existing)
		return &blog, nil
	}

	updated, err := m.db.UpdateBlogByID(ctx, blogID, dbBlog, columns)
	if err != nil {
		return nil, fmt.Errorf("db update blog by id: %w", err)
	}

	blog := NewBlog(updated)
	return &blog, nil
}

// DeleteBlogBySlug removes the blog with the given slug.
func (m *Manager) DeleteBlogBySlug(ctx context.Context, slug string) error {
	deleted, err := m.db.DeleteBlogBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("db delete blog by slug: %w", err)
	}
	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteBlogByID removes the blog with the given id. A missing id surfaces
// as a store failure, matching the id-addressed update.
func (m *Manager) DeleteBlogByID(ctx context.Context, blogID int) error {
	deleted, err := m.db.DeleteBlogByID(ctx, blogID)
	if err != nil {
		return fmt.Errorf("db delete blog by id: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("db delete blog %d: no matching row", blogID)
	}

	return nil
}

// uploadImage sends the attachment to the media host and returns the hosted
// URL. The hosted asset is never rolled back by later failures.
func (m *Manager) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	url, err := m.media.Upload(ctx, image.Data, image.Filename, m.folder)
	if err != nil {
		return "", fmt.Errorf("upload blog image: %w", err)
	}

	return url, nil
}
