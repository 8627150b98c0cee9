package inventory

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/fiado/internal/inventory/repository"
	"github.com/smallbiznis/fiado/internal/inventory/service"
)

var Module = fx.Module("inventory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
