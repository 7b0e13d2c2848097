package rest

import "github.com/ekaraca/blog-admin/internal/blogadmin"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

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

func NewBlogs(list []blogadmin.Blog) []Blog {
	return Map(list, NewBlog)
}
