package db

import (
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestBlogs_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	blogs, err := repo.Blogs(ctx)
	if err != nil {
		t.Fatalf("failed to get blogs: %v", err)
	}

	if len(blogs) != 3 {
		t.Fatalf("expected 3 seeded blogs, got %d", len(blogs))
	}

	for i := range blogs {
		if blogs[i].ID == 0 {
			t.Errorf("invalid blog ID")
		}
		if blogs[i].Slug == "" {
			t.Errorf("empty slug")
		}
		if blogs[i].Categories == nil {
			t.Errorf("categories must never be NULL")
		}
	}
}

func TestBlogBySlug_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("Found", func(t *testing.T) {
		blog, err := repo.BlogBySlug(ctx, "ai-breakthrough")
		if err != nil {
			t.Fatalf("failed to get blog: %v", err)
		}
		if blog == nil {
			t.Fatal("expected blog, got nil")
		}
		if blog.Title != "AI Breakthrough in Machine Learning" {
			t.Errorf("unexpected title: %q", blog.Title)
		}
		if blog.Image == nil || *blog.Image == "" {
			t.Error("expected image URL")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		blog, err := repo.BlogBySlug(ctx, "does-not-exist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if blog != nil {
			t.Fatalf("expected nil, got %+v", blog)
		}
	})
}

func TestCreateBlog_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	image := "https://res.cloudinary.com/demo/image/upload/blog_uploads/new.png"
	blog := &Blog{
		Slug:    "brand-new",
		Title:   "Brand New",
		Content: "Body",
		Author:  "Writer",
		Image:   &image,
	}

	created, err := repo.CreateBlog(ctx, blog)
	if err != nil {
		t.Fatalf("failed to create blog: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected assigned createdAt")
	}
	if created.ReadCount != 0 {
		t.Errorf("expected readCount 0, got %d", created.ReadCount)
	}
	if created.Categories == nil || len(created.Categories) != 0 {
		t.Errorf("expected empty categories, got %v", created.Categories)
	}
	if created.Tags == nil || len(created.Tags) != 0 {
		t.Errorf("expected empty tags, got %v", created.Tags)
	}

	found, err := repo.BlogBySlug(ctx, "brand-new")
	if err != nil {
		t.Fatalf("failed to re-read blog: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("created blog not found by slug")
	}
}

func TestCreateBlog_DuplicateSlug_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	image := "https://res.cloudinary.com/demo/image/upload/blog_uploads/dup.png"
	_, err := repo.CreateBlog(ctx, &Blog{
		Slug:    "ai-breakthrough",
		Title:   "Duplicate",
		Content: "Body",
		Author:  "Writer",
		Image:   &image,
	})

	if err == nil {
		t.Fatal("expected unique violation on duplicate slug")
	}
}

func TestReplaceBlogBySlug_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("OverwritesAllColumns", func(t *testing.T) {
		before, err := repo.BlogBySlug(ctx, "quantum-computing")
		if err != nil || before == nil {
			t.Fatalf("failed to read seeded blog: %v", err)
		}

		updated, err := repo.ReplaceBlogBySlug(ctx, "quantum-computing", &Blog{
			Title: "Replaced",
			Image: before.Image,
		})
		if err != nil {
			t.Fatalf("failed to replace blog: %v", err)
		}
		if updated == nil {
			t.Fatal("expected updated blog, got nil")
		}

		if updated.Title != "Replaced" {
			t.Errorf("unexpected title: %q", updated.Title)
		}
		if updated.Content != "" {
			t.Errorf("content should be cleared, got %q", updated.Content)
		}
		if updated.Author != "" {
			t.Errorf("author should be cleared, got %q", updated.Author)
		}
		if len(updated.Categories) != 0 {
			t.Errorf("categories should be cleared, got %v", updated.Categories)
		}
		if updated.Image == nil || *updated.Image != *before.Image {
			t.Error("image should be preserved")
		}
		if updated.Slug != "quantum-computing" {
			t.Errorf("slug must not change, got %q", updated.Slug)
		}
	})

	t.Run("MissingSlugReturnsNil", func(t *testing.T) {
		updated, err := repo.ReplaceBlogBySlug(ctx, "does-not-exist", &Blog{Title: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated != nil {
			t.Fatalf("expected nil, got %+v", updated)
		}
	})
}

func TestUpdateBlogByID_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	seeded, err := repo.BlogBySlug(ctx, "world-cup-finals")
	if err != nil || seeded == nil {
		t.Fatalf("failed to read seeded blog: %v", err)
	}

	t.Run("TouchesOnlyGivenColumns", func(t *testing.T) {
		updated, err := repo.UpdateBlogByID(ctx, seeded.ID,
			&Blog{Title: "Patched Title"},
			[]string{Columns.Blog.Title},
		)
		if err != nil {
			t.Fatalf("failed to update blog: %v", err)
		}

		if updated.Title != "Patched Title" {
			t.Errorf("unexpected title: %q", updated.Title)
		}
		if updated.Content != seeded.Content {
			t.Errorf("content must stay untouched, got %q", updated.Content)
		}
		if updated.Image == nil || *updated.Image != *seeded.Image {
			t.Error("image must stay untouched")
		}
	})

	t.Run("MissingIDFails", func(t *testing.T) {
		_, err := repo.UpdateBlogByID(ctx, 99999,
			&Blog{Title: "x"},
			[]string{Columns.Blog.Title},
		)
		if err == nil {
			t.Fatal("expected error for missing id")
		}
	})

	t.Run("NoColumnsFails", func(t *testing.T) {
		_, err := repo.UpdateBlogByID(ctx, seeded.ID, &Blog{}, nil)
		if err == nil {
			t.Fatal("expected error for empty column list")
		}
	})
}

func TestDeleteBlog_Integration(t *testing.T) {
	t.Run("BySlug", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		deleted, err := repo.DeleteBlogBySlug(ctx, "ai-breakthrough")
		if err != nil {
			t.Fatalf("failed to delete blog: %v", err)
		}
		if deleted != 1 {
			t.Fatalf("expected 1 deleted row, got %d", deleted)
		}

		blog, err := repo.BlogBySlug(ctx, "ai-breakthrough")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if blog != nil {
			t.Fatal("blog still present after delete")
		}
	})

	t.Run("BySlugMissing", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		deleted, err := repo.DeleteBlogBySlug(ctx, "does-not-exist")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 0 {
			t.Fatalf("expected 0 deleted rows, got %d", deleted)
		}
	})

	t.Run("ByID", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		seeded, err := repo.BlogBySlug(ctx, "quantum-computing")
		if err != nil || seeded == nil {
			t.Fatalf("failed to read seeded blog: %v", err)
		}

		deleted, err := repo.DeleteBlogByID(ctx, seeded.ID)
		if err != nil {
			t.Fatalf("failed to delete blog: %v", err)
		}
		if deleted != 1 {
			t.Fatalf("expected 1 deleted row, got %d", deleted)
		}
	})

	t.Run("ByIDMissing", func(t *testing.T) {
		_, ctx, repo := withTx(t)

		deleted, err := repo.DeleteBlogByID(ctx, 99999)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 0 {
			t.Fatalf("expected 0 deleted rows, got %d", deleted)
		}
	})
}
