package jwt

import (
	"context"
	"time"

	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
)

// AuthMiddleware validates access tokens issued by the account service.
var AuthMiddleware *jwt.HertzJWTMiddleware

// New builds the middleware; the token carries the user id under
// constants.IdentityKey.
func New(secret string, timeout time.Duration) (*jwt.HertzJWTMiddleware, error) {
	return jwt.New(&jwt.HertzJWTMiddleware{
		Realm:         "videotube",
		Key:           []byte(secret),
		Timeout:       timeout,
		MaxRefresh:    timeout,
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, query: token, cookie: jwt",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(int64); ok {
				return jwt.MapClaims{constants.IdentityKey: v}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return utils.Transfer(claims[constants.IdentityKey])
		},
		Authorizator: func(data interface{}, ctx context.Context, c *app.RequestContext) bool {
			id, ok := data.(int64)
			return ok && id > 0
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			hlog.CtxInfof(ctx, "reject request %s: %s", c.Path(), message)
			response.SendError(c, errno.TokenInvailedErr)
		},
	})
}

// AccessTokenJwtInit installs the process wide middleware.
func AccessTokenJwtInit(secret string, timeout time.Duration) {
	var err error
	if AuthMiddleware, err = New(secret, timeout); err != nil {
		hlog.Fatalf("init jwt middleware failed: %v", err)
	}
}

// GenerateToken signs a token for userId.
func GenerateToken(mw *jwt.HertzJWTMiddleware, userId int64) (string, error) {
	token, _, err := mw.TokenGenerator(userId)
	return token, err
}

// GetUserId reads the acting user placed in the context by the middleware.
func GetUserId(c *app.RequestContext) (int64, error) {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return 0, errno.TokenInvailedErr
	}
	id := utils.Transfer(v)
	if id <= 0 {
		return 0, errno.TokenInvailedErr
	}
	return id, nil
}
