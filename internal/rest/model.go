package rest

import "time"

type Blog struct {
	BlogID           int       `json:"blogId"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	Author           string    `json:"author"`
	Image            *string   `json:"image"`
	Categories       []string  `json:"categories"`
	Tags             []string  `json:"tags"`
	ReadCount        int       `json:"readCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

type DeleteBlogRequest struct {
	ID int `json:"id"`
}
