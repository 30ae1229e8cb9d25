package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"VideoTube.com/cmd/dal"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/testutil"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
)

type envelope struct {
	StatusCode int64           `json:"statusCode"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Success    bool            `json:"success"`
	Errors     []string        `json:"errors"`
}

type client struct {
	t      *testing.T
	engine *route.Engine
	tokens map[int64]string
}

func newClient(t *testing.T) *client {
	t.Helper()
	conn := testutil.NewDB(t)
	dal.Init(conn)
	cache.SetClient(nil)
	mq.SetPublisher(nil)
	testutil.SeedUser(t, conn, 1, "alice")
	testutil.SeedUser(t, conn, 2, "bob")
	testutil.SeedVideo(t, conn, &model.Video{VideoId: 100, UserId: 1, Title: "Intro to Go", Description: "basics", IsPublished: true})

	mw, err := jwt.New("router-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("jwt.New: %v", err)
	}
	h := server.New()
	Register(h.Engine, mw.MiddlewareFunc())

	c := &client{t: t, engine: h.Engine, tokens: map[int64]string{}}
	for _, id := range []int64{1, 2} {
		if c.tokens[id], err = jwt.GenerateToken(mw, id); err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
	}
	return c
}

// do sends a request as user (0 means anonymous) and decodes the envelope.
func (c *client) do(user int64, method, url string, body interface{}) (int, *envelope) {
	c.t.Helper()
	var headers []ut.Header
	if user != 0 {
		headers = append(headers, ut.Header{Key: "Authorization", Value: "Bearer " + c.tokens[user]})
	}
	var b *ut.Body
	if body != nil {
		data, _ := json.Marshal(body)
		b = &ut.Body{Body: bytes.NewReader(data), Len: len(data)}
		headers = append(headers, ut.Header{Key: "Content-Type", Value: "application/json"})
	}
	resp := ut.PerformRequest(c.engine, method, url, b, headers...).Result()
	env := &envelope{}
	if err := json.Unmarshal(resp.Body(), env); err != nil {
		c.t.Fatalf("%s %s: decode %q: %v", method, url, resp.Body(), err)
	}
	return resp.StatusCode(), env
}

func TestHealthcheckNeedsNoToken(t *testing.T) {
	c := newClient(t)
	code, env := c.do(0, "GET", "/api/v1/healthcheck", nil)
	if code != consts.StatusOK || !env.Success || env.Message != "OK" {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	var status struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(env.Data, &status); err != nil || status.Message != "Server is running" {
		t.Fatalf("unexpected data %s", env.Data)
	}
}

func TestRejectsAnonymous(t *testing.T) {
	c := newClient(t)
	code, env := c.do(0, "GET", "/api/v1/videos", nil)
	if code != consts.StatusUnauthorized || env.Success || env.StatusCode != consts.StatusUnauthorized {
		t.Fatalf("code=%d env=%+v", code, env)
	}
}

func TestCommentScenario(t *testing.T) {
	c := newClient(t)

	t.Run("MissingText", func(t *testing.T) {
		code, env := c.do(2, "POST", "/api/v1/comments", map[string]string{"videoId": "100"})
		if code != consts.StatusBadRequest || env.Success || string(env.Data) != "null" {
			t.Fatalf("code=%d env=%+v", code, env)
		}
	})

	var comment struct {
		CommentId string `json:"commentId"`
		Content   string `json:"content"`
	}
	t.Run("Add", func(t *testing.T) {
		code, env := c.do(2, "POST", "/api/v1/comments", map[string]string{"videoId": "100", "text": "Great video!"})
		if code != consts.StatusCreated || !env.Success {
			t.Fatalf("code=%d env=%+v", code, env)
		}
		if err := json.Unmarshal(env.Data, &comment); err != nil || comment.Content != "Great video!" {
			t.Fatalf("unexpected data %s", env.Data)
		}
	})

	t.Run("ForeignUpdate", func(t *testing.T) {
		code, env := c.do(1, "PATCH", "/api/v1/comments", map[string]string{"commentId": comment.CommentId, "text": "mine now"})
		if code != consts.StatusForbidden || env.Success {
			t.Fatalf("code=%d env=%+v", code, env)
		}
	})

	t.Run("List", func(t *testing.T) {
		code, env := c.do(1, "GET", "/api/v1/comments/100?page=1&limit=5", nil)
		if code != consts.StatusOK {
			t.Fatalf("code=%d env=%+v", code, env)
		}
		var page struct {
			Comments []struct {
				Content string `json:"content"`
			} `json:"comments"`
			TotalComments int64 `json:"totalComments"`
			TotalPages    int64 `json:"totalPages"`
		}
		if err := json.Unmarshal(env.Data, &page); err != nil {
			t.Fatal(err)
		}
		if page.TotalComments != 1 || page.TotalPages != 1 || page.Comments[0].Content != "Great video!" {
			t.Fatalf("unexpected page %+v", page)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		code, env := c.do(2, "DELETE", "/api/v1/comments", map[string]string{"commentId": comment.CommentId})
		if code != consts.StatusOK || env.Message != "Comment deleted successfully" {
			t.Fatalf("code=%d env=%+v", code, env)
		}
	})
}

func TestLikeToggleStatus(t *testing.T) {
	c := newClient(t)
	code, env := c.do(2, "POST", "/api/v1/likes/toggle/v/100", nil)
	if code != consts.StatusCreated || env.Message != "Video liked" {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	code, env = c.do(2, "POST", "/api/v1/likes/toggle/v/100", nil)
	if code != consts.StatusOK || env.Message != "Video like removed" {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	code, _ = c.do(2, "POST", "/api/v1/likes/toggle/c/abc", nil)
	if code != consts.StatusBadRequest {
		t.Fatalf("malformed id: %d", code)
	}
	code, _ = c.do(2, "POST", "/api/v1/likes/toggle/t/999", nil)
	if code != consts.StatusNotFound {
		t.Fatalf("missing tweet: %d", code)
	}
}

func TestVideoRoutes(t *testing.T) {
	c := newClient(t)

	code, _ := c.do(1, "GET", "/api/v1/videos/not-a-number", nil)
	if code != consts.StatusBadRequest {
		t.Fatalf("malformed id: %d", code)
	}
	code, env := c.do(2, "GET", "/api/v1/videos/100", nil)
	if code != consts.StatusOK {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	var video struct {
		Views int64 `json:"views"`
		Owner struct {
			UserName string `json:"userName"`
		} `json:"owner"`
	}
	if err := json.Unmarshal(env.Data, &video); err != nil || video.Views != 1 || video.Owner.UserName != "alice" {
		t.Fatalf("unexpected video %s", env.Data)
	}

	code, _ = c.do(2, "PATCH", "/api/v1/videos/toggle/publish/100", nil)
	if code != consts.StatusForbidden {
		t.Fatalf("non owner toggle: %d", code)
	}
	code, _ = c.do(1, "PATCH", "/api/v1/videos/toggle/publish/100", nil)
	if code != consts.StatusOK {
		t.Fatalf("owner toggle: %d", code)
	}
	code, _ = c.do(2, "GET", "/api/v1/videos/100", nil)
	if code != consts.StatusNotFound {
		t.Fatalf("draft must be hidden from others: %d", code)
	}

	code, env = c.do(1, "GET", "/api/v1/videos?userId=1&limit=5", nil)
	if code != consts.StatusOK {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	var list struct {
		TotalVideos int64 `json:"totalVideos"`
		CurrentPage int64 `json:"currentPage"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil || list.TotalVideos != 1 || list.CurrentPage != 1 {
		t.Fatalf("unexpected list %s", env.Data)
	}
}

func TestSubscriptionAndDashboard(t *testing.T) {
	c := newClient(t)

	code, _ := c.do(1, "POST", "/api/v1/subscriptions/c/1", nil)
	if code != consts.StatusBadRequest {
		t.Fatalf("self subscription: %d", code)
	}
	code, env := c.do(2, "POST", "/api/v1/subscriptions/c/1", nil)
	if code != consts.StatusCreated || env.Message != "Subscribed successfully" {
		t.Fatalf("code=%d env=%+v", code, env)
	}

	code, env = c.do(1, "GET", "/api/v1/dashboard/stats", nil)
	if code != consts.StatusOK {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	var stats map[string]int64
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatal(err)
	}
	want := map[string]int64{"totalVideos": 1, "totalViews": 0, "totalLikes": 0, "totalSubscribers": 1}
	if fmt.Sprint(stats) != fmt.Sprint(want) {
		t.Fatalf("expected %v, got %v", want, stats)
	}

	code, env = c.do(2, "GET", "/api/v1/subscriptions/u/2", nil)
	if code != consts.StatusOK {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	var channels []struct {
		UserName string `json:"userName"`
	}
	if err := json.Unmarshal(env.Data, &channels); err != nil || len(channels) != 1 || channels[0].UserName != "alice" {
		t.Fatalf("unexpected channels %s", env.Data)
	}
}

func TestPlaylistRoutes(t *testing.T) {
	c := newClient(t)

	code, env := c.do(1, "POST", "/api/v1/playlists", map[string]interface{}{"name": "Favourites", "description": "best of"})
	if code != consts.StatusCreated {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	var playlist struct {
		PlaylistId string   `json:"playlistId"`
		Videos     []string `json:"videos"`
	}
	if err := json.Unmarshal(env.Data, &playlist); err != nil {
		t.Fatal(err)
	}

	code, _ = c.do(2, "PATCH", "/api/v1/playlists/add/100/"+playlist.PlaylistId, nil)
	if code != consts.StatusForbidden {
		t.Fatalf("non owner add: %d", code)
	}
	code, env = c.do(1, "PATCH", "/api/v1/playlists/add/100/"+playlist.PlaylistId, nil)
	if code != consts.StatusOK {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	code, env = c.do(2, "GET", "/api/v1/playlists/"+playlist.PlaylistId, nil)
	if code != consts.StatusOK {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	if err := json.Unmarshal(env.Data, &playlist); err != nil || len(playlist.Videos) != 1 || playlist.Videos[0] != "100" {
		t.Fatalf("unexpected playlist %s", env.Data)
	}
	code, _ = c.do(1, "PATCH", "/api/v1/playlists/remove/999/"+playlist.PlaylistId, nil)
	if code != consts.StatusNotFound {
		t.Fatalf("remove absent video: %d", code)
	}
}
