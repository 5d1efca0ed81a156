package handlers

import (
	"github.com/linskybing/lovecontract/internal/application"
	"github.com/linskybing/lovecontract/internal/config"
	"github.com/linskybing/lovecontract/internal/realtime"
	"github.com/linskybing/lovecontract/internal/repository"
)

type Handlers struct {
	Contract *ContractHandler
	Watch    *WatchHandler
	Health   *HealthHandler
}

func New(svc *application.Services, repos *repository.Repos, hub *realtime.Hub, cfg *config.Config) *Handlers {
	return &Handlers{
		Contract: NewContractHandler(svc.Contract, cfg.CelebrationDelay),
		Watch:    NewWatchHandler(svc.Contract, hub, cfg.AllowedOrigins),
		Health:   NewHealthHandler(repos),
	}
}
