package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/myapp/bookstore/internal/apperror"
	"github.com/myapp/bookstore/internal/catalog"
)

type BooksController struct {
	catalog BookQuerier
	store   BookStore
}

func NewBooksController(catalog BookQuerier, store BookStore) *BooksController {
	return &BooksController{
		catalog: catalog,
		store:   store,
	}
}

// ListBooks runs a catalog query. genre, language and age accept
// comma-separated values; a ratings value that is not an integer is ignored.
func (controller *BooksController) ListBooks(c *gin.Context) {
	q := catalog.Query{
		Search:    c.Query("search"),
		Field:     c.Query("field"),
		Sort:      c.Query("sort"),
		Genres:    catalog.SplitValues(c.QueryArray("genre")),
		Languages: catalog.SplitValues(c.QueryArray("language")),
		Ages:      catalog.SplitValues(c.QueryArray("age")),
	}
	if raw := c.Query("ratings"); raw != "" {
		if rating, err := strconv.Atoi(raw); err == nil {
			q.Rating = &rating
		}
	}

	books, err := controller.catalog.Query(c.Request.Context(), q)
	if err != nil {
		respondInternalError(c, err, "query books")
		return
	}
	c.JSON(http.StatusOK, books)
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	var req createBookRequest
	if !bindJSON(c, &req) {
		return
	}

	book := req.toEntity()
	if err := controller.store.CreateBook(c.Request.Context(), book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := controller.store.DeleteBook(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	if !deleted {
		respondAppError(c, apperror.ErrBookNotFound, "delete book")
		return
	}
	respondSuccess(c, "Книга удалена")
}
