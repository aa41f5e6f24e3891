package model

import "time"

// Comment is a reply to a review. Comments are removed together with the
// review they belong to.
type Comment struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`

	Author   string `json:"author"`
	AuthorID int64  `json:"-"`

	ReviewID int64 `json:"review_id"`

	PubDate time.Time `json:"pub_date"`
}
