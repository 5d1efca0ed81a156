package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/lovecontract/internal/domain/contract"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContractRepo interface {
	CreateContract(ctx context.Context, c *contract.Contract) error
	GetContractByID(ctx context.Context, id uuid.UUID) (contract.Contract, error)
	LockContractByID(ctx context.Context, id uuid.UUID) (contract.Contract, error)
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	WithTx(tx *gorm.DB) ContractRepo
}

type DBContractRepo struct {
	db *gorm.DB
}

func NewContractRepo(db *gorm.DB) *DBContractRepo {
	return &DBContractRepo{
		db: db,
	}
}

func (r *DBContractRepo) CreateContract(ctx context.Context, c *contract.Contract) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *DBContractRepo) GetContractByID(ctx context.Context, id uuid.UUID) (contract.Contract, error) {
	var c contract.Contract
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

// LockContractByID loads the contract with a row lock held until the transaction ends.
// SQLite has no row locks and the clause is dropped there.
func (r *DBContractRepo) LockContractByID(ctx context.Context, id uuid.UUID) (contract.Contract, error) {
	var c contract.Contract
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&c).Error
	return c, err
}

// MarkCompleted moves a pending contract to completed. It reports false when the
// contract was already completed.
func (r *DBContractRepo) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&contract.Contract{}).
		Where("id = ? AND status = ?", id, contract.StatusPending).
		Updates(map[string]interface{}{
			"status":       contract.StatusCompleted,
			"completed_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBContractRepo) WithTx(tx *gorm.DB) ContractRepo {
	if tx == nil {
		return r
	}
	return &DBContractRepo{
		db: tx,
	}
}
