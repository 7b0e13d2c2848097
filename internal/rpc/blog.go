package rpc

import (
	"context"

	"github.com/ekaraca/blog-admin/internal/blogadmin"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// BlogService provides RPC methods for reading blogs.
type BlogService struct {
	zenrpc.Service
	manager *blogadmin.Manager
}

func NewBlogService(manager *blogadmin.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// List retrieves all blogs in store order.
//
//zenrpc:return list of blogs
//zenrpc:500 internal server error
func (s *BlogService) List(ctx context.Context) (Blogs, error) {
	blogs, err := s.manager.Blogs(ctx)
	if err != nil {
		return nil, err
	}

	return NewBlogs(blogs), nil
}

// BySlug retrieves a single blog by slug.
//
//zenrpc:req request with the blog slug
//zenrpc:return blog with full content
//zenrpc:400 slug is required
//zenrpc:404 blog not found
//zenrpc:500 internal server error
func (s *BlogService) BySlug(ctx context.Context, req BlogBySlugRequest) (*Blog, error) {
	if req.Slug == "" {
		return nil, zenrpc.NewStringError(400, "slug is required")
	}

	blog, err := s.manager.BlogBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	if blog == nil {
		return nil, zenrpc.NewStringError(404, "blog not found")
	}

	result := NewBlog(*blog)
	return &result, nil
}
