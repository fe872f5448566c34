//go:build wireinject

package ioc

import (
	"github.com/ctfarena/arena/internal/challenge"
	"github.com/ctfarena/arena/internal/competition"
	"github.com/ctfarena/arena/internal/ranking"
	"github.com/ctfarena/arena/internal/submission"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		competition.InitModule,
		challenge.InitModule,
		ranking.InitModule,
		submission.InitModule,
		wire.FieldsOf(new(*submission.Module), "Hdl", "ReconcileJob"),
		wire.FieldsOf(new(*ranking.Module), "Hdl"),
		wire.FieldsOf(new(*challenge.Module), "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
