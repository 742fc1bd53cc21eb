package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// ParseDate 解析 YYYY-MM-DD，失敗時直接回應 400
func ParseDate(c *gin.Context, field, value string) (time.Time, bool) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + field + ", expected YYYY-MM-DD",
		})
		return time.Time{}, false
	}
	return date, true
}
