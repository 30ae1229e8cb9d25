package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/playlist/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/testutil"
)

func setup(t *testing.T) *PlaylistService {
	t.Helper()
	conn := testutil.NewDB(t)
	db.Init(conn)
	testutil.SeedVideo(t, conn, &model.Video{VideoId: 11, UserId: 1, Title: "a", IsPublished: true})
	testutil.SeedVideo(t, conn, &model.Video{VideoId: 12, UserId: 2, Title: "b", IsPublished: true})
	return NewPlaylistService(context.Background())
}

func TestCreatePlaylist(t *testing.T) {
	s := setup(t)

	cases := []struct {
		name   string
		req    *CreatePlaylistRequest
		expect error
	}{
		{"BlankName", &CreatePlaylistRequest{UserId: 1, Name: "  "}, errno.RequestErr},
		{"MalformedVideo", &CreatePlaylistRequest{UserId: 1, Name: "mix", Videos: []string{"11", "abc"}}, errno.RequestErr},
		{"MissingVideo", &CreatePlaylistRequest{UserId: 1, Name: "mix", Videos: []string{"11", "99"}}, errno.NotFoundErr},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := s.CreatePlaylist(c.req); !errors.Is(err, c.expect) {
				t.Fatalf("expected %v, got %v", c.expect, err)
			}
		})
	}

	p, err := s.CreatePlaylist(&CreatePlaylistRequest{UserId: 1, Name: "mix", Description: "weekend", Videos: []string{"12", "11"}})
	if err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	if len(p.Videos) != 2 || p.Videos[0] != "12" {
		t.Fatalf("unexpected videos %v", p.Videos)
	}
	lists, err := s.GetUserPlaylists(1)
	if err != nil || len(lists) != 1 {
		t.Fatalf("GetUserPlaylists: %d %v", len(lists), err)
	}
	lists, err = s.GetUserPlaylists(3)
	if err != nil || len(lists) != 0 {
		t.Fatalf("expected empty list, got %d %v", len(lists), err)
	}
}

func TestPlaylistMembership(t *testing.T) {
	s := setup(t)
	p, err := s.CreatePlaylist(&CreatePlaylistRequest{UserId: 1, Name: "mix"})
	if err != nil {
		t.Fatalf("CreatePlaylist: %v", err)
	}
	id := p.PlaylistId

	t.Run("DuplicatesAllowed", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if _, err = s.AddVideoToPlaylist(1, 11, id); err != nil {
				t.Fatalf("AddVideoToPlaylist: %v", err)
			}
		}
		detail, err := s.AddVideoToPlaylist(1, 12, id)
		if err != nil {
			t.Fatalf("AddVideoToPlaylist: %v", err)
		}
		if len(detail.Videos) != 3 {
			t.Fatalf("expected 3 entries, got %v", detail.Videos)
		}
	})

	t.Run("Gates", func(t *testing.T) {
		if _, err := s.AddVideoToPlaylist(2, 11, id); !errors.Is(err, errno.ForbiddenErr) {
			t.Fatalf("expected forbidden, got %v", err)
		}
		if _, err := s.AddVideoToPlaylist(1, 99, id); !errors.Is(err, errno.NotFoundErr) {
			t.Fatalf("expected video not found, got %v", err)
		}
		if _, err := s.AddVideoToPlaylist(1, 11, id+1); !errors.Is(err, errno.NotFoundErr) {
			t.Fatalf("expected playlist not found, got %v", err)
		}
		if _, err := s.UpdatePlaylist(1, id, " ", ""); !errors.Is(err, errno.RequestErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if err := s.DeletePlaylist(2, id); !errors.Is(err, errno.ForbiddenErr) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("RemoveFirstOccurrence", func(t *testing.T) {
		detail, err := s.RemoveVideoFromPlaylist(1, 11, id)
		if err != nil {
			t.Fatalf("RemoveVideoFromPlaylist: %v", err)
		}
		want := []string{"11", strconv.Itoa(12)}
		if len(detail.Videos) != 2 || detail.Videos[0] != want[0] || detail.Videos[1] != want[1] {
			t.Fatalf("expected %v, got %v", want, detail.Videos)
		}
		if _, err = s.RemoveVideoFromPlaylist(1, 12, id); err != nil {
			t.Fatalf("RemoveVideoFromPlaylist: %v", err)
		}
		if _, err = s.RemoveVideoFromPlaylist(1, 12, id); !errors.Is(err, errno.NotFoundErr) {
			t.Fatalf("expected not in playlist, got %v", err)
		}
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		detail, err := s.UpdatePlaylist(1, id, "renamed", "")
		if err != nil || detail.Name != "renamed" {
			t.Fatalf("UpdatePlaylist: %v", err)
		}
		if err = s.DeletePlaylist(1, id); err != nil {
			t.Fatalf("DeletePlaylist: %v", err)
		}
		if _, err = s.GetPlaylistById(id); !errors.Is(err, errno.NotFoundErr) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
