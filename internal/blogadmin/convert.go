package blogadmin

import "github.com/ekaraca/blog-admin/internal/db"

func NewBlog(b *db.Blog) Blog {
	return Blog{
		ID:               b.ID,
		Slug:             b.Slug,
		Title:            b.Title,
		ShortDescription: b.ShortDescription,
		Content:          b.Content,
		Author:           b.Author,
		Image:            b.Image,
		Categories:       b.Categories,
		Tags:             b.Tags,
		ReadCount:        b.ReadCount,
		CreatedAt:        b.CreatedAt,
	}
}

func NewBlogs(list []db.Blog) []Blog {
	blogs := make([]Blog, len(list))
	for i := range list {
		blogs[i] = NewBlog(&list[i])
	}

	return blogs
}
