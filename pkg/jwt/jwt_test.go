package jwt

import (
	"context"
	"testing"
	"time"

	"VideoTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestAuthMiddleware(t *testing.T) {
	mw, err := New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	token, err := GenerateToken(mw, 42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	engine := server.New().Engine
	engine.GET("/me", mw.MiddlewareFunc(), func(ctx context.Context, c *app.RequestContext) {
		id, err := GetUserId(c)
		if err != nil {
			c.String(consts.StatusUnauthorized, err.Error())
			return
		}
		c.String(consts.StatusOK, "%d", id)
	})

	t.Run("ValidToken", func(t *testing.T) {
		w := ut.PerformRequest(engine, "GET", "/me", nil, ut.Header{Key: "Authorization", Value: "Bearer " + token})
		resp := w.Result()
		if resp.StatusCode() != consts.StatusOK || string(resp.Body()) != "42" {
			t.Fatalf("status=%d body=%s", resp.StatusCode(), resp.Body())
		}
	})

	t.Run("MissingToken", func(t *testing.T) {
		w := ut.PerformRequest(engine, "GET", "/me", nil)
		if w.Result().StatusCode() != consts.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Result().StatusCode())
		}
	})

	t.Run("ForeignSignature", func(t *testing.T) {
		other, _ := New("another-secret", time.Hour)
		forged, _ := GenerateToken(other, 42)
		w := ut.PerformRequest(engine, "GET", "/me", nil, ut.Header{Key: "Authorization", Value: "Bearer " + forged})
		if w.Result().StatusCode() != consts.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Result().StatusCode())
		}
	})
}

func TestGetUserIdWithoutIdentity(t *testing.T) {
	c := app.NewContext(0)
	if _, err := GetUserId(c); err == nil {
		t.Fatal("expected an error without identity")
	}
	c.Set(constants.IdentityKey, float64(7))
	if id, err := GetUserId(c); err != nil || id != 7 {
		t.Fatalf("id=%d err=%v", id, err)
	}
}
