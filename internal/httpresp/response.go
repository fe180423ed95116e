package httpresp

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/escritorio-juridico/internal/dto"
)

type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T, total int64, page, limit int) {
	if data == nil {
		data = []T{}
	}
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Notify writes the outcome of a form flow.
func Notify(c *gin.Context, status int, n dto.Notification) {
	c.JSON(status, n)
}
