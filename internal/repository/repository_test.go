package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/lovecontract/internal/domain/contract"
	"github.com/linskybing/lovecontract/internal/repository"
	"github.com/linskybing/lovecontract/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepos(t *testing.T) *repository.Repos {
	t.Helper()
	return repository.NewRepositories(testutils.NewSQLiteDB(t))
}

func createContract(t *testing.T, repos *repository.Repos) *contract.Contract {
	t.Helper()
	c := &contract.Contract{Title: "Our Deal", Status: contract.StatusPending}
	require.NoError(t, repos.Contract.CreateContract(context.Background(), c))
	return c
}

func TestContractRepo_CreateAndGet(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	c := createContract(t, repos)
	assert.NotEqual(t, uuid.Nil, c.ID)

	got, err := repos.Contract.GetContractByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Our Deal", got.Title)
	assert.Equal(t, contract.StatusPending, got.Status)
	assert.Nil(t, got.CompletedAt)
	assert.False(t, got.CreatedAt.IsZero())

	_, err = repos.Contract.GetContractByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	locked, err := repos.Contract.LockContractByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, locked.ID)
}

func TestContractRepo_MarkCompletedOnce(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	c := createContract(t, repos)

	at := time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)
	updated, err := repos.Contract.MarkCompleted(ctx, c.ID, at)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repos.Contract.MarkCompleted(ctx, c.ID, at.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, updated, "completed contracts keep their first completed_at")

	got, err := repos.Contract.GetContractByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(at))
}

func TestTermRepo_ListOrderedByTermOrder(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	c := createContract(t, repos)

	// stored out of order on purpose
	require.NoError(t, repos.Term.CreateTerms(ctx, []contract.Term{
		{ContractID: c.ID, Text: "third", Order: 2},
		{ContractID: c.ID, Text: "first", Order: 0},
		{ContractID: c.ID, Text: "second", Order: 1},
	}))
	require.NoError(t, repos.Term.CreateTerms(ctx, nil))

	terms, err := repos.Term.ListTermsByContractID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, terms, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, terms[i].Text)
		assert.Equal(t, i, terms[i].Order)
	}

	other, err := repos.Term.ListTermsByContractID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestTermRepo_DuplicateOrderRejected(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	c := createContract(t, repos)

	require.NoError(t, repos.Term.CreateTerms(ctx, []contract.Term{{ContractID: c.ID, Text: "a", Order: 0}}))
	assert.Error(t, repos.Term.CreateTerms(ctx, []contract.Term{{ContractID: c.ID, Text: "b", Order: 0}}))
}

func TestSignatureRepo_UniquePerRole(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	c := createContract(t, repos)

	msg := "forever"
	require.NoError(t, repos.Signature.CreateSignature(ctx, &contract.Signature{
		ContractID: c.ID, Role: contract.RoleBoyfriend, Name: "Sam",
	}))
	require.NoError(t, repos.Signature.CreateSignature(ctx, &contract.Signature{
		ContractID: c.ID, Role: contract.RoleGirlfriend, Name: "Lee", Message: &msg,
	}))

	err := repos.Signature.CreateSignature(ctx, &contract.Signature{
		ContractID: c.ID, Role: contract.RoleBoyfriend, Name: "Sam again",
	})
	assert.Error(t, err)

	sigs, err := repos.Signature.ListSignaturesByContractID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, sigs, 2)
	gf := contract.FindSignature(sigs, contract.RoleGirlfriend)
	require.NotNil(t, gf)
	require.NotNil(t, gf.Message)
	assert.Equal(t, "forever", *gf.Message)
	assert.Nil(t, contract.FindSignature(sigs, contract.RoleBoyfriend).Message)
}

func TestRepos_ExecTxRollsBack(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()
	boom := errors.New("boom")

	var id uuid.UUID
	err := repos.ExecTx(ctx, func(tx *repository.Repos) error {
		c := &contract.Contract{Title: "rolled back", Status: contract.StatusPending}
		if err := tx.Contract.CreateContract(ctx, c); err != nil {
			return err
		}
		id = c.ID
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repos.Contract.GetContractByID(ctx, id)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, repos.Ping(ctx))
}
