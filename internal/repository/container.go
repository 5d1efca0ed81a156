package repository

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=contract.go -destination=mock/contract_mock.go -package=mock
//go:generate mockgen -source=term.go -destination=mock/term_mock.go -package=mock
//go:generate mockgen -source=signature.go -destination=mock/signature_mock.go -package=mock

type Repos struct {
	Contract  ContractRepo
	Term      TermRepo
	Signature SignatureRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Contract:  NewContractRepo(db),
		Term:      NewTermRepo(db),
		Signature: NewSignatureRepo(db),
		db:        db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Contract:  r.Contract.WithTx(tx),
		Term:      r.Term.WithTx(tx),
		Signature: r.Signature.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn against repositories bound to a single transaction.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}

// Ping checks that the underlying database answers.
func (r *Repos) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
