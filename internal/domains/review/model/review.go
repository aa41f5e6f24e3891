package model

import "time"

// Review is a scored text review of a title. A user may review a given
// title at most once; the store enforces this with a composite unique
// constraint on (author_id, title_id).
type Review struct {
	ID    int64  `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"`

	// Author is the author's username; AuthorID backs the ownership checks
	// and stays off the wire.
	Author   string `json:"author"`
	AuthorID int64  `json:"-"`

	TitleID int64 `json:"title_id"`

	// PubDate is assigned by the store at insert time.
	PubDate time.Time `json:"pub_date"`
}
