package authfunc

import (
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth is the middleware chain in front of every route that needs the
// acting user.
func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.AuthMiddleware.MiddlewareFunc(),
	)
}
