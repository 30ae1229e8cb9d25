package response

import (
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// ApiResponse is the envelope every endpoint answers with.
type ApiResponse struct {
	StatusCode int64       `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors,omitempty"`
}

func NewApiResponse(code int64, data interface{}, message string) ApiResponse {
	return ApiResponse{
		StatusCode: code,
		Data:       data,
		Message:    message,
		Success:    code < 400,
	}
}

func NewApiError(err errno.ErrNo) ApiResponse {
	return ApiResponse{
		StatusCode: err.ErrCode,
		Data:       nil,
		Message:    err.ErrMsg,
		Success:    false,
		Errors:     err.Errors,
	}
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, code int64, data interface{}, message string) {
	c.JSON(int(code), NewApiResponse(code, data, message))
}

// SendError converts err into the error envelope and writes it.
func SendError(c *app.RequestContext, err error) {
	Err := errno.ConvertErr(err)
	c.JSON(int(Err.ErrCode), NewApiError(Err))
}
