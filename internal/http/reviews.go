package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReviewsController struct {
	reviews ReviewManager
}

func NewReviewsController(reviews ReviewManager) *ReviewsController {
	return &ReviewsController{reviews: reviews}
}

// CreateReview adds a review for an existing book and user.
// POST /api/reviews
func (rc *ReviewsController) CreateReview(c *gin.Context) {
	var req reviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := rc.reviews.CreateReview(c.Request.Context(), req.BookID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		respondAppError(c, err, "create review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// UpdateReview replaces rating and comment.
// PUT /api/reviews/:id
func (rc *ReviewsController) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := rc.reviews.UpdateReview(c.Request.Context(), id, req.Rating, req.Comment)
	if err != nil {
		respondAppError(c, err, "update review")
		return
	}
	c.JSON(http.StatusOK, review)
}

// GET /api/reviews
func (rc *ReviewsController) ListAllReviews(c *gin.Context) {
	reviews, err := rc.reviews.ListAllReviews(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GET /api/reviews/:bookId
func (rc *ReviewsController) ListBookReviews(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	reviews, err := rc.reviews.ListReviews(c.Request.Context(), bookID)
	if err != nil {
		respondInternalError(c, err, "list book reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// DELETE /api/reviews/:id
func (rc *ReviewsController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.reviews.DeleteReview(c.Request.Context(), id); err != nil {
		respondAppError(c, err, "delete review")
		return
	}
	respondSuccess(c, "Отзыв удалён")
}
