package model

// Genre tags titles; a title carries one or more genres through a join
// relation.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
