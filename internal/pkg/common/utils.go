package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// RequestID 取得請求 ID，缺少時生成一個並回寫到響應標頭
func RequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.Writer.Header().Get("X-Request-ID")
	}
	if requestID == "" {
		requestID = GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// WriteErrorResponse 寫入錯誤響應
func WriteErrorResponse(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// WriteCustomError 依 CustomError 寫入錯誤響應
func WriteCustomError(c *gin.Context, err *CustomError) {
	status := err.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	WriteErrorResponse(c, status, err.Code, err.Message)
}
