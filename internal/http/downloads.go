package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DownloadsController struct {
	downloads DownloadManager
}

func NewDownloadsController(downloads DownloadManager) *DownloadsController {
	return &DownloadsController{downloads: downloads}
}

func (controller *DownloadsController) AddDownload(c *gin.Context) {
	var req createDownloadRequest
	if !bindJSON(c, &req) {
		return
	}

	download, err := controller.downloads.AddDownload(c.Request.Context(), req.BookID, req.UserID)
	if err != nil {
		respondAppError(c, err, "add download")
		return
	}
	c.JSON(http.StatusOK, download)
}

func (controller *DownloadsController) ListDownloads(c *gin.Context) {
	userID, ok := parseQueryID(c, "userId")
	if !ok {
		return
	}

	downloads, err := controller.downloads.ListDownloads(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, err, "list downloads")
		return
	}
	c.JSON(http.StatusOK, downloads)
}

func (controller *DownloadsController) DeleteDownload(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.downloads.DeleteDownload(c.Request.Context(), id); err != nil {
		respondAppError(c, err, "delete download")
		return
	}
	c.Status(http.StatusOK)
}
