package domain

// Book is a book record. Description may be empty; Rating is always within
// [0,100], enforced at validation and again by the storage constraint.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}

// BookCreate is the request body for creating a book.
type BookCreate struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Author      string `json:"author" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Rating      int    `json:"rating" binding:"omitempty,min=0,max=100"`
}

// BookUpdate is the request body for a partial update. Nil fields are left
// untouched.
type BookUpdate struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Author      *string `json:"author" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Rating      *int    `json:"rating" binding:"omitempty,min=0,max=100"`
}

// Empty reports whether the update carries no fields at all.
func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.Author == nil && u.Description == nil && u.Rating == nil
}

// BookSearch is a conjunction of optional predicates. Empty strings and a
// nil MinRating impose no constraint.
type BookSearch struct {
	Title     string
	Author    string
	MinRating *int
}
