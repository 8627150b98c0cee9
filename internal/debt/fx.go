package debt

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/fiado/internal/debt/repository"
	"github.com/smallbiznis/fiado/internal/debt/service"
)

var Module = fx.Module("debt.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
