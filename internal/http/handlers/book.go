package handlers

import (
	"net/http"
	"strconv"

	"taskshelf/internal/domain"

	"github.com/gin-gonic/gin"
)

func bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusBadRequest, "invalid id format")
		return 0, false
	}
	return id, true
}

// ListBooks returns books with pagination.
func (h *Handler) ListBooks(c *gin.Context) {
	skip, limit, err := parsePage(c)
	if err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	books, err := h.Books.FindMany(c.Request.Context(), skip, limit)
	if err != nil {
		storeError(c, err, "list books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// SearchBooks filters by title/author substring and minimum rating, ANDed.
func (h *Handler) SearchBooks(c *gin.Context) {
	q := domain.BookSearch{
		Title:  c.Query("title"),
		Author: c.Query("author"),
	}

	if v := c.Query("min_rating"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			detail(c, http.StatusBadRequest, "min_rating must be an integer between 0 and 100")
			return
		}
		q.MinRating = &n
	}

	books, err := h.Books.Search(c.Request.Context(), q)
	if err != nil {
		storeError(c, err, "search books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook returns a single book by id.
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	book, err := h.Books.FindOne(c.Request.Context(), id)
	if err != nil {
		storeError(c, err, "get book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook creates a book and returns it with its assigned id.
func (h *Handler) CreateBook(c *gin.Context) {
	var in domain.BookCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		bindingDetail(c, err)
		return
	}

	book, err := h.Books.Insert(c.Request.Context(), in)
	if err != nil {
		storeError(c, err, "create book")
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBook applies a partial update; omitted fields are untouched.
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	var in domain.BookUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		bindingDetail(c, err)
		return
	}

	book, err := h.Books.Update(c.Request.Context(), id, in)
	if err != nil {
		storeError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a single book.
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	if err := h.Books.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteAllBooks removes every book and reports the count.
func (h *Handler) DeleteAllBooks(c *gin.Context) {
	count, err := h.Books.DeleteAll(c.Request.Context())
	if err != nil {
		storeError(c, err, "delete all books")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}
