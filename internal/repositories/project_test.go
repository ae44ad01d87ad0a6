package repositories_test

import (
	"context"
	"testing"

	"charity/internal/models"
	"charity/internal/repositories"
	"charity/internal/repositories/repotest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CompletedPaymentsAccumulate(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	projects := repositories.NewProjectRepository(db)
	donations := repositories.NewDonationRepository(db)
	project := seedProject(t, projects, "wells")

	seedDonation(t, donations, "TXN8AAAAAAAAA", "order_8", models.DonationStatusPending, 250, &project.ID)
	seedDonation(t, donations, "TXN9AAAAAAAAA", "order_9", models.DonationStatusPending, 100, &project.ID)

	for _, orderID := range []string{"order_8", "order_9"} {
		_, applied, err := donations.CompletePayment(ctx, orderID, "pay_"+orderID, "sig")
		require.NoError(t, err)
		require.True(t, applied)
	}

	reloaded, err := projects.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.AmountRaised.Equal(decimal.NewFromInt(350)), "got %s", reloaded.AmountRaised)
}

func TestProjectRepository_SlugAndSoftDelete(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	repo := repositories.NewProjectRepository(db)
	project := seedProject(t, repo, "tree-planting")

	found, err := repo.FindBySlug(ctx, "tree-planting")
	require.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)

	require.NoError(t, repo.Delete(ctx, project.ID))
	_, err = repo.FindByID(ctx, project.ID)
	assert.ErrorIs(t, err, repositories.ErrProjectNotFound)

	exists, err := repo.SlugExists(ctx, "tree-planting")
	require.NoError(t, err)
	assert.True(t, exists, "soft-deleted slugs stay reserved")

	assert.ErrorIs(t, repo.Delete(ctx, project.ID), repositories.ErrProjectNotFound)
}

func TestProjectRepository_ListFilters(t *testing.T) {
	db := repotest.NewDB(t)
	ctx := context.Background()
	repo := repositories.NewProjectRepository(db)

	seedProject(t, repo, "a")
	featured := &models.Project{Title: "b", Slug: "b", Status: models.ProjectStatusActive, IsFeatured: true}
	require.NoError(t, repo.Create(ctx, featured))
	paused := &models.Project{Title: "c", Slug: "c", Status: models.ProjectStatusPaused}
	require.NoError(t, repo.Create(ctx, paused))

	active, err := repo.List(ctx, models.ProjectFilter{Status: models.ProjectStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "b", active[0].Slug, "featured projects sort first")

	yes := true
	onlyFeatured, err := repo.List(ctx, models.ProjectFilter{Featured: &yes})
	require.NoError(t, err)
	assert.Len(t, onlyFeatured, 1)
}
