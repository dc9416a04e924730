package transition

import (
	"github.com/haneul-labs/haneul/internal/transition/service"
	"go.uber.org/fx"
)

var Module = fx.Module("transition.service",
	fx.Provide(service.NewService),
)
