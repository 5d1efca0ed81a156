//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/linskybing/lovecontract/internal/application"
	"github.com/linskybing/lovecontract/internal/config/db"
	"github.com/linskybing/lovecontract/internal/domain/contract"
	"github.com/linskybing/lovecontract/internal/repository"
	"github.com/linskybing/lovecontract/internal/testutils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var repos *repository.Repos

func TestMain(m *testing.M) {
	sqlDB, cleanup, err := testutils.SetupPostgresForIntegration()
	if err != nil {
		fmt.Fprintln(os.Stderr, "integration setup:", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), db.GormConfig())
	if err != nil {
		cleanup()
		fmt.Fprintln(os.Stderr, "open gorm:", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		cleanup()
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	repos = repository.NewRepositories(gormDB)

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func newService() *application.ContractService {
	return application.NewContractService(repos, nil, zerolog.Nop())
}

func TestPostgres_OurDeal(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, repos.Ping(ctx))

	c, err := svc.CreateContract(ctx, contract.CreateContractDTO{
		Title: "Our Deal",
		Terms: []string{"Be kind", "Share fries"},
	})
	require.NoError(t, err)

	first, err := svc.SignContract(ctx, c.ID, contract.SignContractDTO{Role: contract.RoleBoyfriend, Name: "Sam"})
	require.NoError(t, err)
	assert.False(t, first.Completed)

	msg := "forever"
	second, err := svc.SignContract(ctx, c.ID, contract.SignContractDTO{Role: contract.RoleGirlfriend, Name: "Lee", Message: &msg})
	require.NoError(t, err)
	assert.True(t, second.Completed)

	view, err := svc.LoadContractView(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusCompleted, view.Contract.Status)
	require.NotNil(t, view.Contract.CompletedAt)
	require.Len(t, view.Terms, 2)
	assert.Equal(t, "Be kind", view.Terms[0].Text)
	assert.Equal(t, "Share fries", view.Terms[1].Text)
	for _, s := range view.Signatures {
		assert.False(t, view.Contract.CompletedAt.Before(s.SignedAt))
	}
}

func TestPostgres_ConcurrentSignersCompleteOnce(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	c, err := svc.CreateContract(ctx, contract.CreateContractDTO{Terms: []string{"Be kind"}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*contract.SignResult, 2)
	errs := make([]error, 2)
	for i, role := range contract.RequiredRoles {
		wg.Add(1)
		go func(i int, role contract.Role) {
			defer wg.Done()
			results[i], errs[i] = svc.SignContract(ctx, c.ID, contract.SignContractDTO{Role: role, Name: string(role)})
		}(i, role)
	}
	wg.Wait()

	completions := 0
	for i := range results {
		require.NoError(t, errs[i])
		if results[i].Completed {
			completions++
		}
	}
	assert.Equal(t, 1, completions)
}

func TestPostgres_ConcurrentSameRole(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	c, err := svc.CreateContract(ctx, contract.CreateContractDTO{Terms: []string{"Be kind"}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SignContract(ctx, c.ID, contract.SignContractDTO{Role: contract.RoleGirlfriend, Name: "Lee"})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, application.ErrAlreadySigned)
	}
	assert.Equal(t, 1, ok)

	view, err := svc.LoadContractView(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, view.Signatures, 1)
	assert.Equal(t, contract.StatusPending, view.Contract.Status)
}
