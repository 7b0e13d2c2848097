package rpc

import "github.com/ekaraca/blog-admin/internal/blogadmin"

func NewBlog(b blogadmin.Blog) Blog {
	return Blog{
		BlogID:           b.ID,
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

func NewBlogs(list []blogadmin.Blog) Blogs {
	blogs := make(Blogs, len(list))
	for i := range list {
		blogs[i] = NewBlog(list[i])
	}

	return blogs
}
