package handler

import (
	"github.com/gin-gonic/gin"

	"print4me/internal/domain"
	"print4me/internal/service"
)

// PageHandler handles page counting endpoints.
type PageHandler struct {
	pageService service.PageService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(pageService service.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// CountOne handles POST /api/count-one
func (h *PageHandler) CountOne(c *gin.Context) {
	files, err := formFiles(c, "file")
	if err != nil {
		handleFormError(c, err)
		return
	}
	if len(files) == 0 {
		HandleError(c, domain.ErrMissingFile)
		return
	}

	res, err := h.pageService.CountOne(c.Request.Context(), files[0])
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"pages":        res.Pages,
		"originalName": res.OriginalName,
		"mimetype":     res.ContentType,
	})
}

// CountMany handles POST /api/count-pages
func (h *PageHandler) CountMany(c *gin.Context) {
	files, err := formFiles(c, "files")
	if err != nil {
		handleFormError(c, err)
		return
	}

	counts, total, err := h.pageService.CountMany(c.Request.Context(), files)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"totalPages": total,
		"files":      counts,
	})
}
