package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ekaraca/blog-admin/internal/blogadmin"
	"github.com/ekaraca/blog-admin/internal/media"
	"github.com/labstack/echo/v4"
)

type BlogHandler struct {
	uc  *blogadmin.Manager
	log *slog.Logger
}

func NewBlogHandler(uc *blogadmin.Manager, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:  uc,
		log: log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

func (h *BlogHandler) handleErrorDetails(c echo.Context, err error, statusCode int, message, details string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message, "details": details})
}

// mapError converts a manager failure into the matching HTTP response:
// validation 400, not-found 404, everything else 500 with details.
func (h *BlogHandler) mapError(c echo.Context, err error, message string) error {
	var validationErr *blogadmin.ValidationError
	var uploadErr *media.UploadError

	switch {
	case errors.As(err, &validationErr):
		return h.handleError(c, err, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, blogadmin.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, "Blog not found")
	case errors.As(err, &uploadErr):
		return h.handleErrorDetails(c, err, http.StatusInternalServerError, message, uploadErr.Message)
	default:
		return h.handleErrorDetails(c, err, http.StatusInternalServerError, message, err.Error())
	}
}

// Blogs handles GET /api/v1/blogs
// @Summary Get all blogs
// @Description Retrieves all blogs without filtering or pagination, in store order
// @Tags blogs
// @Produce json
// @Success 200 {array} rest.Blog
// @Failure 500 {object} map[string]string
// @Router /api/v1/blogs [get]
func (h *BlogHandler) Blogs(c echo.Context) error {
	blogs, err := h.uc.Blogs(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Error fetching blogs")
	}

	return c.JSON(http.StatusOK, NewBlogs(blogs))
}

// BlogBySlug handles GET /api/v1/blogs/:slug
// @Summary Get blog by slug
// @Description Retrieves a single blog by its slug
// @Tags blogs
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} rest.Blog
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/blogs/{slug} [get]
func (h *BlogHandler) BlogBySlug(c echo.Context) error {
	slug := c.Param("slug")

	blog, err := h.uc.BlogBySlug(c.Request().Context(), slug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Error fetching blog")
	}
	if blog == nil {
		return h.handleError(c, nil, http.StatusNotFound, "Blog not found")
	}

	return c.JSON(http.StatusOK, NewBlog(*blog))
}

// CreateBlog handles POST /api/v1/blogs
// @Summary Create a blog
// @Description Creates a blog from a multipart form with a required image attachment. The image is uploaded to the media host before the record is written.
// @Tags blogs
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param slug formData string false "Slug"
// @Param shortDescription formData string false "Short description"
// @Param content formData string true "Content"
// @Param author formData string true "Author"
// @Param categories formData string false "JSON array of categories"
// @Param tags formData string false "JSON array of tags"
// @Param file formData file true "Image attachment"
// @Success 201 {object} rest.Blog
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/blogs [post]
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	image, err := formImage(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	draft, err := formDraft(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	blog, err := h.uc.CreateBlog(c.Request().Context(), draft, image)
	if err != nil {
		return h.mapError(c, err, "Error creating blog post")
	}

	return c.JSON(http.StatusCreated, NewBlog(*blog))
}

// UpdateBlogBySlug handles PUT /api/v1/blogs/:slug
// @Summary Replace a blog
// @Description Replaces every editable field of the blog with the given slug. Omitted fields are cleared, not preserved; only the image survives when no new file is sent.
// @Tags blogs
// @Accept mpfd
// @Produce json
// @Param slug path string true "Blog slug"
// @Param file formData file false "New image attachment"
// @Success 200 {object} rest.Blog
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/blogs/{slug} [put]
func (h *BlogHandler) UpdateBlogBySlug(c echo.Context) error {
	slug := c.Param("slug")

	image, err := formImage(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	draft, err := formDraft(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	blog, err := h.uc.UpdateBlogBySlug(c.Request().Context(), slug, draft, image)
	if err != nil {
		return h.mapError(c, err, "Error updating blog")
	}

	return c.JSON(http.StatusOK, NewBlog(*blog))
}

// PatchBlog handles PATCH /api/v1/blogs
// @Summary Partially update a blog
// @Description Applies only the submitted non-empty fields to the blog with the given id. Categories and tags replace the stored sequence wholesale.
// @Tags blogs
// @Accept mpfd
// @Produce json
// @Param id formData int true "Blog id"
// @Param file formData file false "New image attachment"
// @Success 200 {object} rest.Blog
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/blogs [patch]
func (h *BlogHandler) PatchBlog(c echo.Context) error {
	blogID, err := strconv.Atoi(c.FormValue("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	image, err := formImage(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	patch, err := formPatch(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	blog, err := h.uc.PatchBlog(c.Request().Context(), blogID, patch, image)
	if err != nil {
		return h.mapError(c, err, "Error partially updating blog post")
	}

	return c.JSON(http.StatusOK, NewBlog(*blog))
}

// DeleteBlogBySlug handles DELETE /api/v1/blogs/:slug
// @Summary Delete a blog by slug
// @Description Removes the blog with the given slug. The hosted image is not cleaned up.
// @Tags blogs
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} map[string]string
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/blogs/{slug} [delete]
func (h *BlogHandler) DeleteBlogBySlug(c echo.Context) error {
	slug := c.Param("slug")

	if err := h.uc.DeleteBlogBySlug(c.Request().Context(), slug); err != nil {
		return h.mapError(c, err, "Failed to delete blog post")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Blog post deleted successfully"})
}

// DeleteBlogByID handles DELETE /api/v1/blogs
// @Summary Delete a blog by id
// @Description Removes the blog identified by the id in the JSON body.
// @Tags blogs
// @Accept json
// @Produce json
// @Param request body rest.DeleteBlogRequest true "Blog id"
// @Success 200 {object} map[string]string
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/blogs [delete]
func (h *BlogHandler) DeleteBlogByID(c echo.Context) error {
	var req DeleteBlogRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	if err := h.uc.DeleteBlogByID(c.Request().Context(), req.ID); err != nil {
		return h.mapError(c, err, "Error deleting blog post")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Blog deleted"})
}
