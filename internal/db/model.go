// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Blog struct {
		ID, Slug, Title, ShortDescription, Content, Author, Image, Categories, Tags, ReadCount, CreatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Blog: struct {
		ID, Slug, Title, ShortDescription, Content, Author, Image, Categories, Tags, ReadCount, CreatedAt string
	}{
		ID:               "blogId",
		Slug:             "slug",
		Title:            "title",
		ShortDescription: "shortDescription",
		Content:          "content",
		Author:           "author",
		Image:            "image",
		Categories:       "categories",
		Tags:             "tags",
		ReadCount:        "readCount",
		CreatedAt:        "createdAt",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Blog struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Blog: struct {
		Name, Alias string
	}{
		Name:  "blogs",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Blog struct {
	tableName struct{} `pg:"blogs,alias:t,discard_unknown_columns"`

	ID               int       `pg:"blogId,pk"`
	Slug             string    `pg:"slug,use_zero"`
	Title            string    `pg:"title,use_zero"`
	ShortDescription string    `pg:"shortDescription,use_zero"`
	Content          string    `pg:"content,use_zero"`
	Author           string    `pg:"author,use_zero"`
	Image            *string   `pg:"image"`
	Categories       []string  `pg:"categories,array,use_zero"`
	Tags             []string  `pg:"tags,array,use_zero"`
	ReadCount        int       `pg:"readCount,use_zero"`
	CreatedAt        time.Time `pg:"createdAt,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
