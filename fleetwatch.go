package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"fleetwatch/internal/cli"
	"fleetwatch/internal/config"
	"fleetwatch/internal/handler"
	"fleetwatch/internal/svc"
)

var configFile = flag.String("f", "etc/fleetwatch.yaml", "the config file")

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)
	cli.LogConfigSummary(cfg)

	server := rest.MustNewServer(cfg.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(*cfg)
	handler.RegisterHandlers(server, ctx)
	httpx.SetErrorHandlerCtx(handler.ErrorHandler)

	if cfg.SyncOnStart {
		if err := ctx.Session.Refresh(context.Background()); err != nil {
			// The server still starts; the operator can retry via /refresh.
			logx.Errorf("initial fleet refresh failed: %v", err)
		}
	}

	fmt.Printf("Starting server at %s:%d...\n", cfg.Host, cfg.Port)
	server.Start()
}
