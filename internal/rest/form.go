package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ekaraca/blog-admin/internal/blogadmin"
	"github.com/labstack/echo/v4"
)

// formDraft reads the full editable field set from a multipart form. Absent
// text fields come back as empty strings; absent list fields as nil.
func formDraft(c echo.Context) (blogadmin.BlogDraft, error) {
	categories, err := parseStringList(c.FormValue("categories"))
	if err != nil {
		return blogadmin.BlogDraft{}, fmt.Errorf("categories: %w", err)
	}

	tags, err := parseStringList(c.FormValue("tags"))
	if err != nil {
		return blogadmin.BlogDraft{}, fmt.Errorf("tags: %w", err)
	}

	return blogadmin.BlogDraft{
		Slug:             c.FormValue("slug"),
		Title:            c.FormValue("title"),
		ShortDescription: c.FormValue("shortDescription"),
		Content:          c.FormValue("content"),
		Author:           c.FormValue("author"),
		Categories:       categories,
		Tags:             tags,
	}, nil
}

// formPatch reads only the fields actually submitted with non-empty values,
// so the manager can apply merge semantics.
func formPatch(c echo.Context) (blogadmin.BlogPatch, error) {
	var patch blogadmin.BlogPatch

	if v := c.FormValue("title"); v != "" {
		patch.Title = &v
	}
	if v := c.FormValue("shortDescription"); v != "" {
		patch.ShortDescription = &v
	}
	if v := c.FormValue("content"); v != "" {
		patch.Content = &v
	}
	if v := c.FormValue("author"); v != "" {
		patch.Author = &v
	}

	if raw := c.FormValue("categories"); raw != "" {
		categories, err := parseStringList(raw)
		if err != nil {
			return blogadmin.BlogPatch{}, fmt.Errorf("categories: %w", err)
		}
		patch.Categories = categories
	}
	if raw := c.FormValue("tags"); raw != "" {
		tags, err := parseStringList(raw)
		if err != nil {
			return blogadmin.BlogPatch{}, fmt.Errorf("tags: %w", err)
		}
		patch.Tags = tags
	}

	return patch, nil
}

// formImage reads the optional image attachment. Returns nil when the form
// carries no file part.
func formImage(c echo.Context) (*blogadmin.ImageUpload, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("file: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("file: %w", err)
	}

	return &blogadmin.ImageUpload{
		Filename: fh.Filename,
		Data:     data,
	}, nil
}

// parseStringList decodes a JSON-serialized array of strings, the encoding
// the admin form uses for categories and tags. An empty value yields nil.
func parseStringList(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("invalid string list: %w", err)
	}

	return list, nil
}
