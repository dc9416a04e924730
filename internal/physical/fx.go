package physical

import (
	"github.com/haneul-labs/haneul/internal/physical/service"
	"go.uber.org/fx"
)

var Module = fx.Module("physical.service",
	fx.Provide(service.NewService),
)
