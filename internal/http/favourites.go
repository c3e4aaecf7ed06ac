package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FavouritesController struct {
	favourites FavouriteManager
}

func NewFavouritesController(favourites FavouriteManager) *FavouritesController {
	return &FavouritesController{favourites: favourites}
}

// ListFavourites returns the user's favourite books.
// GET /api/favorites/:userId
func (fc *FavouritesController) ListFavourites(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	books, err := fc.favourites.ListFavoriteBooks(c.Request.Context(), userID)
	if err != nil {
		respondAppError(c, err, "list favourites")
		return
	}
	c.JSON(http.StatusOK, books)
}

// AddFavourite bookmarks a book for the user.
// POST /api/favorites/:userId
func (fc *FavouritesController) AddFavourite(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BookID == nil {
		respondBadRequest(c, "bookId is required")
		return
	}

	favourite, err := fc.favourites.AddFavorite(c.Request.Context(), userID, *req.BookID)
	if err != nil {
		respondAppError(c, err, "add favourite")
		return
	}
	c.JSON(http.StatusOK, favourite)
}

// RemoveFavourite deletes the bookmark and answers with an empty 200.
// DELETE /api/favorites/:userId/:bookId
func (fc *FavouritesController) RemoveFavourite(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	if err := fc.favourites.RemoveFavorite(c.Request.Context(), userID, bookID); err != nil {
		respondAppError(c, err, "remove favourite")
		return
	}
	c.Status(http.StatusOK)
}
