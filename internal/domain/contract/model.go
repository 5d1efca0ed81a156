package contract

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the lifecycle state of a contract
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Role identifies which of the two parties signed
type Role string

const (
	RoleBoyfriend  Role = "boyfriend"
	RoleGirlfriend Role = "girlfriend"
)

// RequiredRoles are the parties that must both sign before a contract completes.
var RequiredRoles = []Role{RoleBoyfriend, RoleGirlfriend}

func (r Role) Valid() bool {
	return r == RoleBoyfriend || r == RoleGirlfriend
}

// Contract is the root record. CompletedAt is set exactly when Status becomes completed.
type Contract struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string     `json:"title" gorm:"type:text;not null"`
	Status      Status     `json:"status" gorm:"size:16;not null;default:'pending'"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time `json:"completed_at"`

	Terms      []Term      `json:"terms,omitempty" gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
	Signatures []Signature `json:"signatures,omitempty" gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
}

func (Contract) TableName() string {
	return "contracts"
}

func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Contract) IsCompleted() bool {
	return c.Status == StatusCompleted
}

// Term is one promise of a contract; Order is zero-based and unique per contract.
type Term struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID uuid.UUID `json:"contract_id" gorm:"type:uuid;not null;uniqueIndex:idx_term_contract_order,priority:1"`
	Text       string    `json:"term_text" gorm:"column:term_text;type:text;not null"`
	Order      int       `json:"term_order" gorm:"column:term_order;not null;uniqueIndex:idx_term_contract_order,priority:2"`
}

func (Term) TableName() string {
	return "contract_terms"
}

func (t *Term) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Signature records one party's consent. At most one per (contract, role).
type Signature struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ContractID uuid.UUID `json:"contract_id" gorm:"type:uuid;not null;uniqueIndex:idx_signature_contract_role,priority:1"`
	Role       Role      `json:"role" gorm:"size:16;not null;uniqueIndex:idx_signature_contract_role,priority:2"`
	Name       string    `json:"name" gorm:"type:text;not null"`
	Message    *string   `json:"message" gorm:"type:text"`
	SignedAt   time.Time `json:"signed_at" gorm:"autoCreateTime"`
}

func (Signature) TableName() string {
	return "signatures"
}

func (s *Signature) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// FindSignature returns the first signature whose role matches.
func FindSignature(sigs []Signature, role Role) *Signature {
	for i := range sigs {
		if sigs[i].Role == role {
			return &sigs[i]
		}
	}
	return nil
}

// AllRolesSigned reports whether every required role has at least one signature.
func AllRolesSigned(sigs []Signature) bool {
	for _, r := range RequiredRoles {
		if FindSignature(sigs, r) == nil {
			return false
		}
	}
	return true
}
