package receivable

import (
	"go.uber.org/fx"

	"github.com/smallbiznis/fiado/internal/receivable/repository"
	"github.com/smallbiznis/fiado/internal/receivable/service"
)

var Module = fx.Module("receivable.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
