package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/chama/internal/auth"
	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage/memory"
)

func TestDemo(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	res, err := Demo(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, &Result{Chamas: 3, Members: 8, Contributions: 14, Loans: 5, AdminCreated: true}, res)

	chamas, err := store.ListChamas(ctx)
	require.NoError(t, err)
	require.Len(t, chamas, 3)
	assert.Equal(t, "Uhuru Savings", chamas[0].Name)

	uhuru, err := store.ListContributions(ctx, chamas[0].ID)
	require.NoError(t, err)
	assert.Len(t, uhuru, 7)

	loans, err := store.ListLoans(ctx, "")
	require.NoError(t, err)
	var repaid *models.Loan
	for _, l := range loans {
		if l.Status == models.LoanRepaid {
			repaid = l
		}
	}
	require.NotNil(t, repaid)
	require.NotNil(t, repaid.RepaymentDate)
	assert.Equal(t, "2024-06-11", repaid.RepaymentDate.Format("2006-01-02"))

	admin, err := auth.NewPasswordAuthenticator(store).Authenticate(ctx, AdminEmail, AdminPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, AdminName, admin.DisplayName)
}

func TestDemo_Idempotent(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := Demo(ctx, store)
	require.NoError(t, err)
	res, err := Demo(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, &Result{}, res)

	members, err := store.ListMembers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, members, 8)
}
