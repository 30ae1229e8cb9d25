package errno

import (
	"errors"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// ErrNo carries the HTTP status code and the message shown to the caller.
type ErrNo struct {
	ErrCode int64
	ErrMsg  string
	Errors  []string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// WithErrors attaches field level details to the error envelope.
func (e ErrNo) WithErrors(errs ...string) ErrNo {
	e.Errors = append(append([]string(nil), e.Errors...), errs...)
	return e
}

// Is reports whether two ErrNo values are of the same kind.
func (e ErrNo) Is(target error) bool {
	t, ok := target.(ErrNo)
	if !ok {
		return false
	}
	return e.ErrCode == t.ErrCode
}

const (
	SuccessCode    = consts.StatusOK
	CreatedCode    = consts.StatusCreated
	RequestErrCode = consts.StatusBadRequest
	AuthErrCode    = consts.StatusUnauthorized
	ForbiddenCode  = consts.StatusForbidden
	NotFoundCode   = consts.StatusNotFound
	LimitErrCode   = consts.StatusTooManyRequests
	ServiceErrCode = consts.StatusInternalServerError
)

var (
	Success          = NewErrNo(SuccessCode, "Success")
	Created          = NewErrNo(CreatedCode, "Created")
	RequestErr       = NewErrNo(RequestErrCode, "Invalid request")
	ErrBind          = NewErrNo(RequestErrCode, "Failed to parse request")
	InvalidIdErr     = NewErrNo(RequestErrCode, "Invalid id")
	TokenInvailedErr = NewErrNo(AuthErrCode, "Token is invalid or expired")
	ForbiddenErr     = NewErrNo(ForbiddenCode, "You are not authorized to perform this action")
	NotFoundErr      = NewErrNo(NotFoundCode, "Resource not found")
	LimitErr         = NewErrNo(LimitErrCode, "Too many requests")
	ServiceErr       = NewErrNo(ServiceErrCode, "Something went wrong")
	MysqlErr         = NewErrNo(ServiceErrCode, "Database error")
	RedisErr         = NewErrNo(ServiceErrCode, "Cache error")
	OssErr           = NewErrNo(ServiceErrCode, "Error uploading media")
)

// ConvertErr convert error to Errno
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	return ServiceErr
}
