package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/linskybing/lovecontract/internal/domain/contract"
	"gorm.io/gorm"
)

type SignatureRepo interface {
	CreateSignature(ctx context.Context, s *contract.Signature) error
	ListSignaturesByContractID(ctx context.Context, contractID uuid.UUID) ([]contract.Signature, error)
	WithTx(tx *gorm.DB) SignatureRepo
}

type DBSignatureRepo struct {
	db *gorm.DB
}

func NewSignatureRepo(db *gorm.DB) *DBSignatureRepo {
	return &DBSignatureRepo{
		db: db,
	}
}

func (r *DBSignatureRepo) CreateSignature(ctx context.Context, s *contract.Signature) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DBSignatureRepo) ListSignaturesByContractID(ctx context.Context, contractID uuid.UUID) ([]contract.Signature, error) {
	var sigs []contract.Signature
	if err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("signed_at ASC").
		Find(&sigs).Error; err != nil {
		return nil, err
	}
	return sigs, nil
}

func (r *DBSignatureRepo) WithTx(tx *gorm.DB) SignatureRepo {
	if tx == nil {
		return r
	}
	return &DBSignatureRepo{
		db: tx,
	}
}
