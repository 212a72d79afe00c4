package responses

import "github.com/gin-gonic/gin"

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func build(status string, data any, message string, err error) APIResponse {
	resp := APIResponse{
		Status:  status,
		Message: message,
		Data:    data,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}

func Success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, build(StatusSuccess, data, message, nil))
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	c.JSON(statusCode, build(StatusError, nil, message, err))
}

// FailWithData is Fail for workflows that report partial progress, such as
// the stage a create stopped at.
func FailWithData(c *gin.Context, statusCode int, data any, err error, message string) {
	c.JSON(statusCode, build(StatusError, data, message, err))
}

// Abort writes a failure and stops the handler chain.
func Abort(c *gin.Context, statusCode int, err error, message string) {
	c.AbortWithStatusJSON(statusCode, build(StatusError, nil, message, err))
}
