package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the payload of every failed request.
type ErrorBody struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageBody acknowledges a mutation that has nothing else to return.
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the response body.
func Success[T any](ctx *gin.Context, status int, data T) {
	ctx.JSON(status, data)
}

// Message writes {"message": msg}.
func Message(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, MessageBody{Message: msg})
}

// Error aborts the chain and writes {"error": msg}.
func Error(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{Error: msg})
}

// ValidationError aborts with per-field details next to the message.
func ValidationError(ctx *gin.Context, status int, msg string, details map[string]string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{Error: msg, Details: details})
}
