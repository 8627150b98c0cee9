package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/smallbiznis/fiado/internal/config"
	"github.com/smallbiznis/fiado/internal/migration"
	"github.com/smallbiznis/fiado/internal/server"
	"github.com/smallbiznis/fiado/pkg/db"
	"github.com/smallbiznis/fiado/pkg/log"
)

func main() {
	app := fx.New(
		config.Module,
		log.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
