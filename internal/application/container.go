package application

import (
	"github.com/linskybing/lovecontract/internal/repository"
	"github.com/rs/zerolog"
)

type Services struct {
	Contract *ContractService
}

func New(repos *repository.Repos, notifier Notifier, log zerolog.Logger) *Services {
	return &Services{
		Contract: NewContractService(repos, notifier, log),
	}
}
