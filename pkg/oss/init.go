package oss

import (
	"VideoTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Default is the store used by the video service.
var Default Storage

func InitMinio() error {
	cfg := config.ConfigInfo.Minio
	hlog.Infof("Initializing MinIO client with endpoint: %s, accessKey: %s", cfg.Endpoint, cfg.AccessKey)

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	host := cfg.PublicHost
	if host == "" {
		host = cfg.Endpoint
	}
	Default = NewMinioStorage(client, host, cfg.UseSSL)
	hlog.Info("Connect Minio Success")
	return nil
}
