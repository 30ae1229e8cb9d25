package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/testutil"
	"VideoTube.com/pkg/utils"
)

func seedVideos(t *testing.T, owner int64, n int, published bool) {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		testutil.SeedVideo(t, DB, &model.Video{
			VideoId:     owner*1000 + int64(i) + 1,
			UserId:      owner,
			Title:       fmt.Sprintf("Go Tutorial %d", i),
			ViewCount:   int64(i),
			IsPublished: published,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestListVideos(t *testing.T) {
	ctx := context.Background()
	Init(testutil.NewDB(t))
	seedVideos(t, 1, 25, true)
	seedVideos(t, 2, 3, false)

	t.Run("FirstPageNewestFirst", func(t *testing.T) {
		videos, total, err := ListVideos(ctx, &VideoFilter{OwnerId: 1}, 0, 10)
		if err != nil {
			t.Fatalf("ListVideos: %v", err)
		}
		if total != 25 || len(videos) != 10 {
			t.Fatalf("total=%d len=%d", total, len(videos))
		}
		if videos[0].VideoId != 1025 {
			t.Fatalf("expected newest first, got %d", videos[0].VideoId)
		}
	})

	t.Run("LastPage", func(t *testing.T) {
		videos, _, err := ListVideos(ctx, &VideoFilter{OwnerId: 1}, 20, 10)
		if err != nil || len(videos) != 5 {
			t.Fatalf("len=%d err=%v", len(videos), err)
		}
	})

	t.Run("PageBeyondRange", func(t *testing.T) {
		p := utils.NewPage("92233720368547760", "100")
		videos, total, err := ListVideos(ctx, &VideoFilter{OwnerId: 1}, p.Offset(), int(p.Limit))
		if err != nil {
			t.Fatalf("ListVideos: %v", err)
		}
		if total != 25 || len(videos) != 0 {
			t.Fatalf("total=%d len=%d, want an empty page", total, len(videos))
		}
	})

	t.Run("SortByViewsAsc", func(t *testing.T) {
		videos, _, err := ListVideos(ctx, &VideoFilter{OwnerId: 1, SortBy: "views", SortType: "asc"}, 0, 3)
		if err != nil || videos[0].ViewCount != 0 || videos[2].ViewCount != 2 {
			t.Fatalf("unexpected order: %v", err)
		}
	})

	t.Run("UnknownSortFallsBack", func(t *testing.T) {
		if _, _, err := ListVideos(ctx, &VideoFilter{SortBy: "1; DROP TABLE videos"}, 0, 3); err != nil {
			t.Fatalf("ListVideos: %v", err)
		}
	})

	t.Run("OnlyPublished", func(t *testing.T) {
		_, total, err := ListVideos(ctx, &VideoFilter{OnlyPublished: true}, 0, 10)
		if err != nil || total != 25 {
			t.Fatalf("total=%d err=%v", total, err)
		}
	})

	t.Run("TitleQueryCaseInsensitive", func(t *testing.T) {
		_, total, err := ListVideos(ctx, &VideoFilter{Query: "tutorial 1"}, 0, 50)
		if err != nil {
			t.Fatalf("ListVideos: %v", err)
		}
		// "Tutorial 1" and "Tutorial 10".."Tutorial 19" for owner 1, "Tutorial 1" for owner 2
		if total != 12 {
			t.Fatalf("total=%d", total)
		}
	})
}

func TestVideoMutations(t *testing.T) {
	ctx := context.Background()
	Init(testutil.NewDB(t))
	seedVideos(t, 7, 1, true)
	const id = 7001

	if err := IncrViewCount(ctx, id); err != nil {
		t.Fatalf("IncrViewCount: %v", err)
	}
	if err := SetPublished(ctx, id, false); err != nil {
		t.Fatalf("SetPublished: %v", err)
	}
	if err := UpdateVideo(ctx, id, map[string]interface{}{"title": "renamed"}); err != nil {
		t.Fatalf("UpdateVideo: %v", err)
	}
	v, err := GetVideoById(ctx, id)
	if err != nil || v == nil {
		t.Fatalf("GetVideoById: %v", err)
	}
	if v.ViewCount != 1 || v.IsPublished || v.Title != "renamed" {
		t.Fatalf("unexpected video: %+v", v)
	}

	if err := DeleteVideo(ctx, id); err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}
	if v, _ = GetVideoById(ctx, id); v != nil {
		t.Fatal("video still present after delete")
	}
}

func TestTitleQueryMatchesWildcardsLiterally(t *testing.T) {
	ctx := context.Background()
	Init(testutil.NewDB(t))
	for i, title := range []string{"100% Go", "snake_case", "wow!", "plain title"} {
		testutil.SeedVideo(t, DB, &model.Video{VideoId: int64(i + 1), UserId: 1, Title: title, IsPublished: true})
	}
	cases := map[string]int64{"%": 1, "_": 1, "!": 1, "100%": 1, "e_c": 1, "title": 1, "missing": 0}
	for query, want := range cases {
		_, total, err := ListVideos(ctx, &VideoFilter{Query: query}, 0, 10)
		if err != nil {
			t.Fatalf("ListVideos(%q): %v", query, err)
		}
		if total != want {
			t.Errorf("ListVideos(%q) total = %d, want %d", query, total, want)
		}
	}
}
