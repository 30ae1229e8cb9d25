package main

import (
	"context"
	"time"

	"VideoTube.com/cmd/api/router"
	"VideoTube.com/cmd/api/router/authfunc"
	"VideoTube.com/cmd/dal"
	"VideoTube.com/config"
	"VideoTube.com/config/jaeger"
	"VideoTube.com/config/pprof"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/database"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/jwt"
	"VideoTube.com/pkg/middleware"
	"VideoTube.com/pkg/mq"
	"VideoTube.com/pkg/oss"
	"VideoTube.com/pkg/response"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/cors"
)

func Init() {
	config.Init()
	if err := utils.InitSnowflake(config.ConfigInfo.Server.NodeId); err != nil {
		hlog.Fatalf("init snowflake failed: %v", err)
	}
	conn, err := database.Open()
	if err != nil {
		hlog.Fatalf("init database failed: %v", err)
	}
	dal.Init(conn)
	cache.Load()
	if err = oss.InitMinio(); err != nil {
		hlog.Errorf("minio unavailable, uploads will fail: %v", err)
	}
	if _, err = mq.Init(); err != nil {
		hlog.Errorf("rabbitmq unavailable, domain events disabled: %v", err)
	}
	if err = middleware.InitSentinel(config.ConfigInfo.Sentinel.Qps); err != nil {
		hlog.Fatalf("init sentinel failed: %v", err)
	}
	timeout, err := time.ParseDuration(config.ConfigInfo.Jwt.Timeout)
	if err != nil {
		timeout = 24 * time.Hour
	}
	jwt.AccessTokenJwtInit(config.ConfigInfo.Jwt.Secret, timeout)
}

func main() {
	Init()
	if config.ConfigInfo.Server.Pprof {
		pprof.Load(":6060")
	}
	if config.ConfigInfo.Jaeger.Enable {
		closer := jaeger.InitJaeger(constants.ApiServiceName, config.ConfigInfo.Jaeger.AgentAddr)
		defer closer.Close()
	}

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(1024*1024*1024),
	)

	// 配置 CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigInfo.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 错误处理, 不向调用方暴露堆栈
	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			response.SendError(c, errno.ServiceErr)
		})))

	r.Use(middleware.Tracing(), middleware.Sentinel())

	router.Register(r.Engine, authfunc.Auth()...)

	r.Spin()
}
