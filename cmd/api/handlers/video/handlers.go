package handlers

import (
	"os"
	"path/filepath"

	"VideoTube.com/config"
	"github.com/cloudwego/hertz/pkg/app"
)

type ListVideoParam struct {
	Page     string `query:"page"`
	Limit    string `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserId   string `query:"userId"`
}

type PublishVideoParam struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

type VideoIdParam struct {
	VideoId string `path:"videoId"`
}

type UpdateVideoParam struct {
	VideoId     string `path:"videoId"`
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

// uploadDir creates a private directory for the files of one request.
func uploadDir() (string, error) {
	base := config.ConfigInfo.Server.TempDir
	if base != "" {
		if err := os.MkdirAll(base, 0o755); err != nil {
			return "", err
		}
	}
	return os.MkdirTemp(base, "upload-*")
}

// saveUpload stores the multipart file field in dir. An absent field is not
// an error and yields an empty path.
func saveUpload(c *app.RequestContext, field, dir string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", nil
	}
	path := filepath.Join(dir, field+filepath.Ext(fh.Filename))
	if err = c.SaveUploadedFile(fh, path); err != nil {
		return "", err
	}
	return path, nil
}
