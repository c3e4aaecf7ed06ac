package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myapp/bookstore/internal/apperror"
	"github.com/myapp/bookstore/internal/entities"
)

type FaqsController struct {
	store FaqStore
}

func NewFaqsController(store FaqStore) *FaqsController {
	return &FaqsController{store: store}
}

func (controller *FaqsController) ListFaqs(c *gin.Context) {
	faqs, err := controller.store.GetAllFaqs(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list faqs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// SearchFaqs matches keyword against questions, ignoring case. An empty
// keyword returns every FAQ.
func (controller *FaqsController) SearchFaqs(c *gin.Context) {
	faqs, err := controller.store.SearchByQuestion(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		respondInternalError(c, err, "search faqs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

func (controller *FaqsController) CreateFaq(c *gin.Context) {
	var req createFaqRequest
	if !bindJSON(c, &req) {
		return
	}

	faq := &entities.Faq{Question: req.Question, Answer: req.Answer}
	if err := controller.store.CreateFaq(c.Request.Context(), faq); err != nil {
		respondInternalError(c, err, "create faq")
		return
	}
	c.JSON(http.StatusOK, faq)
}

func (controller *FaqsController) DeleteFaq(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := controller.store.DeleteFaq(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "delete faq")
		return
	}
	if !deleted {
		respondAppError(c, apperror.ErrFaqNotFound, "delete faq")
		return
	}
	respondSuccess(c, "FAQ удалён")
}
