package blogadmin

import "time"

type Blog struct {
	ID               int
	Slug             string
	Title            string
	ShortDescription string
	Content          string
	Author           string
	Image            *string
	Categories       []string
	Tags             []string
	ReadCount        int
	CreatedAt        time.Time
}

// BlogDraft carries the full editable field set of a blog. Create and the
// slug-addressed update both take the whole draft; empty values are written
// as submitted, not skipped.
type BlogDraft struct {
	Slug             string
	Title            string
	ShortDescription string
	Content          string
	Author           string
	Categories       []string
	Tags             []string
}

// BlogPatch carries a sparse field set for the id-addressed update. Nil
// fields are left untouched; categories and tags, when present, replace the
// stored sequence wholesale.
type BlogPatch struct {
	Title            *string
	ShortDescription *string
	Content          *string
	Author           *string
	Categories       []string
	Tags             []string
}

// ImageUpload is a submitted image attachment, not yet hosted.
type ImageUpload struct {
	Filename string
	Data     []byte
}
