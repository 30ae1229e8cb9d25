package middleware

import (
	"context"

	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/response"
	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const InboundResource = "videotube-api"

// InitSentinel starts sentinel and caps inbound traffic at qps.
func InitSentinel(qps float64) error {
	if err := sentinel.InitDefault(); err != nil {
		return err
	}
	return LoadFlowRule(qps)
}

func LoadFlowRule(qps float64) error {
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               InboundResource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              qps,
			StatIntervalInMs:       1000,
		},
	})
	return err
}

// Sentinel rejects requests above the configured rate with 429.
func Sentinel() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		e, b := sentinel.Entry(InboundResource, sentinel.WithTrafficType(base.Inbound))
		if b != nil {
			hlog.CtxWarnf(ctx, "request %s blocked by sentinel: %s", c.Path(), b.BlockMsg())
			response.SendError(c, errno.LimitErr)
			c.Abort()
			return
		}
		defer e.Exit()
		c.Next(ctx)
	}
}
