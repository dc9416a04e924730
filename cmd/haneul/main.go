package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/haneul-labs/haneul/internal/clock"
	"github.com/haneul-labs/haneul/internal/config"
	"github.com/haneul-labs/haneul/internal/observability"
	"github.com/haneul-labs/haneul/internal/physical"
	"github.com/haneul-labs/haneul/internal/server"
	"github.com/haneul-labs/haneul/internal/session"
	"github.com/haneul-labs/haneul/internal/transition"
	"github.com/haneul-labs/haneul/internal/weather"
	"github.com/haneul-labs/haneul/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Engine domains
		weather.Module,
		transition.Module,
		physical.Module,
		session.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
