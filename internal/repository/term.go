package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/lovecontract/internal/domain/contract"
	"gorm.io/gorm"
)

type TermRepo interface {
	CreateTerms(ctx context.Context, terms []contract.Term) error
	ListTermsByContractID(ctx context.Context, contractID uuid.UUID) ([]contract.Term, error)
	WithTx(tx *gorm.DB) TermRepo
}

type DBTermRepo struct {
	db *gorm.DB
}

func NewTermRepo(db *gorm.DB) *DBTermRepo {
	return &DBTermRepo{
		db: db,
	}
}

func (r *DBTermRepo) CreateTerms(ctx context.Context, terms []contract.Term) error {
	if len(terms) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&terms).Error
}

func (r *DBTermRepo) ListTermsByContractID(ctx context.Context, contractID uuid.UUID) ([]contract.Term, error) {
	var terms []contract.Term
	if err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("term_order ASC").
		Find(&terms).Error; err != nil {
		return nil, err
	}
	return terms, nil
}

func (r *DBTermRepo) WithTx(tx *gorm.DB) TermRepo {
	if tx == nil {
		return r
	}
	return &DBTermRepo{
		db: tx,
	}
}
