package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aaru/internal/service"
)

type WisdomHandler struct {
	wisdom *service.Wisdom
}

func NewWisdomHandler(wisdom *service.Wisdom) *WisdomHandler {
	return &WisdomHandler{wisdom: wisdom}
}

// GetDaily handles GET /wisdom. Always succeeds; failures inside the
// fetch degrade to the fixed fallback quote.
func (h *WisdomHandler) GetDaily(c *gin.Context) {
	c.JSON(http.StatusOK, h.wisdom.Daily(c.Request.Context()))
}
