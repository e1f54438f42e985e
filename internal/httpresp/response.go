package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Success bool `json:"success"`
	Data    []T  `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(200, ListResponse[T]{
		Success: true,
		Data:    data,
	})
}
