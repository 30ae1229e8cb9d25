package response

import (
	"testing"

	"VideoTube.com/pkg/errno"
	"github.com/pkg/errors"
)

func TestNewApiResponse(t *testing.T) {
	resp := NewApiResponse(errno.CreatedCode, map[string]int{"a": 1}, "Video liked")
	if !resp.Success || resp.StatusCode != 201 || resp.Message != "Video liked" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	if NewApiResponse(404, nil, "x").Success {
		t.Fatal("4xx envelope must not report success")
	}
}

func TestNewApiError(t *testing.T) {
	t.Run("KnownKind", func(t *testing.T) {
		err := errors.WithMessage(errno.ForbiddenErr.WithMessage("You are not authorized to update this comment"), "service.UpdateComment")
		resp := NewApiError(errno.ConvertErr(err))
		if resp.StatusCode != 403 || resp.Success || resp.Data != nil {
			t.Fatalf("unexpected envelope: %+v", resp)
		}
		if resp.Message != "You are not authorized to update this comment" {
			t.Fatalf("message lost: %q", resp.Message)
		}
	})

	t.Run("UnknownErrorIsInternal", func(t *testing.T) {
		resp := NewApiError(errno.ConvertErr(errors.New("dial tcp: refused")))
		if resp.StatusCode != 500 {
			t.Fatalf("expected 500, got %d", resp.StatusCode)
		}
		if resp.Message == "dial tcp: refused" {
			t.Fatal("raw store error leaked into envelope")
		}
	})

	t.Run("SubErrors", func(t *testing.T) {
		resp := NewApiError(errno.RequestErr.WithErrors("title is required", "description is required"))
		if len(resp.Errors) != 2 {
			t.Fatalf("expected 2 sub errors, got %v", resp.Errors)
		}
	})
}
