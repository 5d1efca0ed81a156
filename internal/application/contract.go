package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/lovecontract/internal/domain/contract"
	"github.com/linskybing/lovecontract/internal/metrics"
	"github.com/linskybing/lovecontract/internal/repository"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Notifier receives contract events after they are committed.
type Notifier interface {
	Publish(contractID uuid.UUID, ev contract.Event)
}

type nopNotifier struct{}

func (nopNotifier) Publish(uuid.UUID, contract.Event) {}

type ContractService struct {
	Repos    *repository.Repos
	notifier Notifier
	log      zerolog.Logger
	now      func() time.Time
	loc      *time.Location
}

func NewContractService(repos *repository.Repos, notifier Notifier, log zerolog.Logger) *ContractService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &ContractService{
		Repos:    repos,
		notifier: notifier,
		log:      log.With().Str("module", "contract_service").Logger(),
		now:      time.Now,
		loc:      time.UTC,
	}
}

// WithClock replaces the time source used for created_at, signed_at and completed_at.
func (s *ContractService) WithClock(now func() time.Time) *ContractService {
	s.now = now
	return s
}

func (s *ContractService) Template() contract.Template {
	return contract.DefaultTemplate()
}

// CreateContract stores a pending contract and its terms in one transaction.
func (s *ContractService) CreateContract(ctx context.Context, input contract.CreateContractDTO) (*contract.Contract, error) {
	if len(input.Terms) == 0 {
		return nil, fmt.Errorf("%w: please add at least one term to your contract", ErrValidation)
	}
	texts := make([]string, len(input.Terms))
	for i, t := range input.Terms {
		texts[i] = strings.TrimSpace(t)
		if texts[i] == "" {
			return nil, fmt.Errorf("%w: term %d is empty", ErrValidation, i+1)
		}
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = contract.DefaultTitle
	}

	c := &contract.Contract{
		Title:     title,
		Status:    contract.StatusPending,
		CreatedAt: s.now(),
	}
	var terms []contract.Term

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if err := tx.Contract.CreateContract(ctx, c); err != nil {
			return err
		}
		terms = make([]contract.Term, len(texts))
		for i, text := range texts {
			terms[i] = contract.Term{ContractID: c.ID, Text: text, Order: i}
		}
		return tx.Term.CreateTerms(ctx, terms)
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("create_contract").Inc()
		s.log.Error().Err(err).Msg("create contract")
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	c.Terms = terms
	metrics.ContractsCreated.Inc()
	s.log.Info().Str("contract_id", c.ID.String()).Int("terms", len(terms)).Msg("contract created")
	return c, nil
}

// SignContract records one partner's signature and completes the contract once both
// partners have signed. Insert, recount and status update share a transaction that
// holds a lock on the contract row, so concurrent signers are serialized.
func (s *ContractService) SignContract(ctx context.Context, contractID uuid.UUID, input contract.SignContractDTO) (*contract.SignResult, error) {
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be %q or %q", ErrValidation, contract.RoleBoyfriend, contract.RoleGirlfriend)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: please enter your name", ErrValidation)
	}
	var message *string
	if input.Message != nil {
		if m := strings.TrimSpace(*input.Message); m != "" {
			message = &m
		}
	}

	var result contract.SignResult
	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		c, err := tx.Contract.LockContractByID(ctx, contractID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContractNotFound
			}
			return err
		}

		existing, err := tx.Signature.ListSignaturesByContractID(ctx, contractID)
		if err != nil {
			return err
		}
		if contract.FindSignature(existing, input.Role) != nil {
			return ErrAlreadySigned
		}

		sig := contract.Signature{
			ContractID: contractID,
			Role:       input.Role,
			Name:       name,
			Message:    message,
			SignedAt:   s.now(),
		}
		if err := tx.Signature.CreateSignature(ctx, &sig); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadySigned
			}
			return err
		}

		sigs, err := tx.Signature.ListSignaturesByContractID(ctx, contractID)
		if err != nil {
			return err
		}

		result = contract.SignResult{Signature: sig, Contract: c}
		if !contract.AllRolesSigned(sigs) || c.IsCompleted() {
			return nil
		}

		at := s.now()
		if at.Before(sig.SignedAt) {
			at = sig.SignedAt
		}
		updated, err := tx.Contract.MarkCompleted(ctx, contractID, at)
		if err != nil {
			return err
		}
		if updated {
			result.Contract.Status = contract.StatusCompleted
			result.Contract.CompletedAt = &at
			result.Completed = true
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrContractNotFound) || errors.Is(err, ErrAlreadySigned) {
			return nil, err
		}
		metrics.StoreErrors.WithLabelValues("sign_contract").Inc()
		s.log.Error().Err(err).Str("contract_id", contractID.String()).Str("role", string(input.Role)).Msg("sign contract")
		return nil, fmt.Errorf("%w: %w", ErrSignFailed, err)
	}

	metrics.SignaturesRecorded.WithLabelValues(string(input.Role)).Inc()
	s.notifier.Publish(contractID, contract.Event{
		Type:       contract.EventSigned,
		ContractID: contractID,
		Role:       input.Role,
		Name:       name,
		At:         result.Signature.SignedAt,
	})
	if result.Completed {
		metrics.ContractsCompleted.Inc()
		s.notifier.Publish(contractID, contract.Event{
			Type:       contract.EventCompleted,
			ContractID: contractID,
			At:         *result.Contract.CompletedAt,
		})
		s.log.Info().Str("contract_id", contractID.String()).Msg("contract completed")
	}
	return &result, nil
}

// LoadContractView reads the contract, its ordered terms and its signatures. Terms and
// signatures are not read when the contract does not exist.
func (s *ContractService) LoadContractView(ctx context.Context, contractID uuid.UUID) (*contract.ContractView, error) {
	c, err := s.Repos.Contract.GetContractByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, s.loadFailed(contractID, err)
	}

	terms, err := s.Repos.Term.ListTermsByContractID(ctx, contractID)
	if err != nil {
		return nil, s.loadFailed(contractID, err)
	}
	sigs, err := s.Repos.Signature.ListSignaturesByContractID(ctx, contractID)
	if err != nil {
		return nil, s.loadFailed(contractID, err)
	}

	view := contract.NewContractView(c, terms, sigs)
	return &view, nil
}

func (s *ContractService) Celebration(ctx context.Context, contractID uuid.UUID) (*contract.CelebrationView, error) {
	view, err := s.LoadContractView(ctx, contractID)
	if err != nil {
		return nil, err
	}
	cv := contract.NewCelebrationView(*view, s.loc)
	return &cv, nil
}

func (s *ContractService) loadFailed(contractID uuid.UUID, err error) error {
	metrics.StoreErrors.WithLabelValues("load_contract").Inc()
	s.log.Error().Err(err).Str("contract_id", contractID.String()).Msg("load contract")
	return fmt.Errorf("%w: %w", ErrLoadFailed, err)
}
