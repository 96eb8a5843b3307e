package entity

// Book is a single catalog record. The id is assigned by the store when a
// creation request carries none.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// SameContent reports whether two books agree on everything except the id.
func (b Book) SameContent(other Book) bool {
	return b.Title == other.Title && b.Author == other.Author
}
