package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentcatalog/internal/clock"
	"github.com/smallbiznis/rentcatalog/internal/config"
	"github.com/smallbiznis/rentcatalog/internal/migration"
	"github.com/smallbiznis/rentcatalog/internal/observability"
	"github.com/smallbiznis/rentcatalog/internal/server"
	"github.com/smallbiznis/rentcatalog/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Schema and demo catalog are ready before the listener starts.
		migration.Module,
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
