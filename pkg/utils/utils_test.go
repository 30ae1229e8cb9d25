package utils

import (
	"errors"
	"testing"

	"VideoTube.com/pkg/errno"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name        string
		page, limit string
		wantPage    int64
		wantLimit   int64
		wantOffset  int
	}{
		{"Defaults", "", "", 1, 10, 0},
		{"NonNumeric", "abc", "x", 1, 10, 0},
		{"NonPositive", "0", "-5", 1, 10, 0},
		{"Valid", "3", "20", 3, 20, 40},
		{"ClampedLimit", "1", "1000", 1, 100, 0},
		{"HugePage", "92233720368547760", "100", 92233720368547758, 100, 9223372036854775700},
		{"MaxInt64Page", "9223372036854775807", "1", 9223372036854775807, 1, 9223372036854775806},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage(tc.page, tc.limit)
			if p.Page != tc.wantPage || p.Limit != tc.wantLimit || p.Offset() != tc.wantOffset {
				t.Fatalf("got %+v offset=%d", p, p.Offset())
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	p := NewPage("1", "10")
	for total, want := range map[int64]int64{0: 0, 1: 1, 10: 1, 11: 2, 25: 3} {
		if got := p.TotalPages(total); got != want {
			t.Errorf("TotalPages(%d) = %d, want %d", total, got, want)
		}
	}
}

func TestParseId(t *testing.T) {
	if id, err := ParseId(" 42 ", "videoId"); err != nil || id != 42 {
		t.Fatalf("ParseId valid: id=%d err=%v", id, err)
	}
	for _, raw := range []string{"", "abc", "0", "-3", "64ab"} {
		_, err := ParseId(raw, "videoId")
		if !errors.Is(err, errno.RequestErr) {
			t.Errorf("ParseId(%q) = %v, want validation error", raw, err)
		}
	}
}

func TestTransfer(t *testing.T) {
	if Transfer(float64(7)) != 7 || Transfer("8") != 8 || Transfer(int64(9)) != 9 {
		t.Fatal("Transfer failed for supported types")
	}
	if Transfer([]byte("1")) != -1 || Transfer("x") != -1 {
		t.Fatal("Transfer should return -1 for unsupported input")
	}
}
