// Command windd runs the "hello wind!" demo application.
package main

import (
	"context"

	"github.com/lordpeara/wind"
	"github.com/lordpeara/wind/httpserver"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func helloWind(*wind.Request) (any, error) {
	return "hello wind!", nil
}

type helloResource struct{ wind.BaseResource }

func (helloResource) HandleGet(t *wind.Responder) error {
	t.Write(map[string]string{"hello": "wind!"})
	return t.Finish()
}

func newApp(logs *zap.Logger) (*wind.App, error) {
	return wind.NewAppWith([]*wind.Path{
		wind.MustPathFunc(helloWind, "/", "get"),
		wind.MustPath(func() wind.Resource { return &helloResource{} }, "/resource", "get"),
	}, wind.NewZapLogger(logs))
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(httpserver.ConfigFromEnv),
		fx.Provide(httpserver.NewLogger),
		fx.Provide(newApp),
		fx.Provide(httpserver.New),
		fx.Invoke(startServerHook),
	).Run()
}

func startServerHook(lc fx.Lifecycle, server *httpserver.Server, logs *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.ListenAndServe(); err != nil {
					logs.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			logs.Info("stopping server")
			return server.Close()
		},
	})
}
