package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskshelf/internal/domain"
	"taskshelf/internal/repository"

	"github.com/gin-gonic/gin"
)

func newBookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(nil, repository.NewMemoryBookRepository())

	r := gin.New()
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.POST("", h.CreateBook)
		books.DELETE("", h.DeleteAllBooks)
		books.GET("/search", h.SearchBooks)
		books.GET("/:id", h.GetBook)
		books.PUT("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
	}
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBook(t *testing.T, w *httptest.ResponseRecorder) domain.Book {
	t.Helper()
	var b domain.Book
	if err := json.Unmarshal(w.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return b
}

func TestBookLifecycle(t *testing.T) {
	r := newBookRouter()

	w := do(t, r, "POST", "/books", `{"title":"Dune","author":"Herbert","rating":90}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decodeBook(t, w)
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	w = do(t, r, "GET", "/books/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	got := decodeBook(t, w)
	if got != created {
		t.Fatalf("read differs from create: %+v vs %+v", got, created)
	}

	w = do(t, r, "PUT", "/books/1", `{"rating":95}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	updated := decodeBook(t, w)
	if updated.Rating != 95 || updated.Title != "Dune" || updated.Author != "Herbert" {
		t.Fatalf("partial update clobbered fields: %+v", updated)
	}

	w = do(t, r, "DELETE", "/books/1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}

	w = do(t, r, "GET", "/books/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}
}

func TestBookValidation(t *testing.T) {
	r := newBookRouter()

	cases := []struct {
		name string
		body string
	}{
		{"missing title", `{"author":"Herbert"}`},
		{"missing author", `{"title":"Dune"}`},
		{"rating above 100", `{"title":"Dune","author":"Herbert","rating":101}`},
		{"negative rating", `{"title":"Dune","author":"Herbert","rating":-1}`},
		{"title too long", `{"title":"` + strings.Repeat("a", 201) + `","author":"Herbert"}`},
		{"not json", `not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, "POST", "/books", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if _, ok := body["detail"]; !ok {
				t.Fatalf("error body missing detail: %s", w.Body.String())
			}
		})
	}
}

func TestBookUpdateErrors(t *testing.T) {
	r := newBookRouter()
	do(t, r, "POST", "/books", `{"title":"Dune","author":"Herbert"}`)

	w := do(t, r, "PUT", "/books/1", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty payload: expected 400, got %d", w.Code)
	}

	w = do(t, r, "PUT", "/books/999", `{"rating":10}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", w.Code)
	}

	w = do(t, r, "PUT", "/books/abc", `{"rating":10}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id: expected 400, got %d", w.Code)
	}
}

func TestBookSearch(t *testing.T) {
	r := newBookRouter()
	do(t, r, "POST", "/books", `{"title":"Dune","author":"Frank Herbert","rating":90}`)
	do(t, r, "POST", "/books", `{"title":"Dune Messiah","author":"Frank Herbert","rating":75}`)
	do(t, r, "POST", "/books", `{"title":"Hyperion","author":"Dan Simmons","rating":88}`)

	w := do(t, r, "GET", "/books/search?title=dune&min_rating=80", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []domain.Book
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Dune" {
		t.Fatalf("expected only Dune, got %+v", got)
	}

	w = do(t, r, "GET", "/books/search?min_rating=crazy", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad min_rating, got %d", w.Code)
	}
}

func TestBookBulkDelete(t *testing.T) {
	r := newBookRouter()
	do(t, r, "POST", "/books", `{"title":"a","author":"x"}`)
	do(t, r, "POST", "/books", `{"title":"b","author":"x"}`)

	w := do(t, r, "DELETE", "/books", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]int64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["deletedCount"] != 2 {
		t.Fatalf("expected deletedCount 2, got %d", body["deletedCount"])
	}

	// bulk delete on an empty store succeeds with count 0
	w = do(t, r, "DELETE", "/books", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["deletedCount"] != 0 {
		t.Fatalf("expected deletedCount 0, got %d", body["deletedCount"])
	}
}

func TestBookListPagination(t *testing.T) {
	r := newBookRouter()
	for _, title := range []string{"a", "b", "c"} {
		do(t, r, "POST", "/books", `{"title":"`+title+`","author":"x"}`)
	}

	w := do(t, r, "GET", "/books?skip=1&limit=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []domain.Book
	json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 1 || got[0].Title != "b" {
		t.Fatalf("wrong window: %+v", got)
	}

	w = do(t, r, "GET", "/books?skip=-1", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative skip, got %d", w.Code)
	}
	w = do(t, r, "GET", "/books?limit=0", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero limit, got %d", w.Code)
	}
}
