package jaeger

import (
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// InitJaeger installs a global tracer reporting to agentAddr. When the agent
// cannot be configured the noop tracer stays in place.
func InitJaeger(service, agentAddr string) io.Closer {
	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           false,
			LocalAgentHostPort: agentAddr,
		},
	}
	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		hlog.Errorf("init jaeger tracer failed: %v", err)
		return nopCloser{}
	}
	opentracing.SetGlobalTracer(tracer)
	return closer
}
