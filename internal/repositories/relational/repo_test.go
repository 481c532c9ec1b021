package relational_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/jobboard/internal/models"
	"github.com/yoockh/jobboard/internal/repositories/relational"
	"github.com/yoockh/jobboard/internal/testutil"
	"github.com/yoockh/jobboard/internal/utils"
)

func TestUserRepoUniqueEmail(t *testing.T) {
	ctx := context.Background()
	users := relational.NewUserRepo(testutil.NewDB(t))

	u := &models.User{Email: "a@example.com", Password: "pw", Role: models.RoleCandidate}
	require.NoError(t, users.Create(ctx, u))
	assert.NotZero(t, u.ID)

	// the index rejects what a racing pre-check would have let through
	dup := &models.User{Email: "a@example.com", Password: "other", Role: models.RoleRecruiter}
	assert.ErrorIs(t, users.Create(ctx, dup), utils.ErrAlreadyExists)

	exists, err := users.ExistsByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := users.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, models.RoleCandidate, got.Role)

	byID, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", byID.Email)

	_, err = users.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestJobRepoOwnership(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := relational.NewUserRepo(db)
	jobs := relational.NewJobRepo(db)

	r1 := &models.User{Email: "r1@example.com", Password: "pw", Role: models.RoleRecruiter}
	r2 := &models.User{Email: "r2@example.com", Password: "pw", Role: models.RoleRecruiter}
	require.NoError(t, users.Create(ctx, r1))
	require.NoError(t, users.Create(ctx, r2))

	j1 := &models.Job{Title: "Backend Engineer", Description: "Go", RecruiterID: r1.ID}
	j2 := &models.Job{Title: "SRE", Description: "k8s", RecruiterID: r2.ID}
	require.NoError(t, jobs.Create(ctx, j1))
	require.NoError(t, jobs.Create(ctx, j2))

	all, err := jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Backend Engineer", all[0].Title)
	assert.Equal(t, "SRE", all[1].Title)

	owned, err := jobs.GetOwned(ctx, j1.ID, r1.ID)
	require.NoError(t, err)
	assert.Equal(t, j1.ID, owned.ID)

	_, err = jobs.GetOwned(ctx, j1.ID, r2.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = jobs.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestApplicationRepoKeepsOrderAndDuplicates(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	users := relational.NewUserRepo(db)
	jobs := relational.NewJobRepo(db)
	apps := relational.NewApplicationRepo(db)

	r := &models.User{Email: "r@example.com", Password: "pw", Role: models.RoleRecruiter}
	c1 := &models.User{Email: "c1@example.com", Password: "pw", Role: models.RoleCandidate}
	c2 := &models.User{Email: "c2@example.com", Password: "pw", Role: models.RoleCandidate}
	for _, u := range []*models.User{r, c1, c2} {
		require.NoError(t, users.Create(ctx, u))
	}

	ja := &models.Job{Title: "A", Description: "a", RecruiterID: r.ID}
	jb := &models.Job{Title: "B", Description: "b", RecruiterID: r.ID}
	require.NoError(t, jobs.Create(ctx, ja))
	require.NoError(t, jobs.Create(ctx, jb))

	for _, a := range []*models.Application{
		{CandidateID: c1.ID, JobID: jb.ID},
		{CandidateID: c2.ID, JobID: ja.ID},
		{CandidateID: c1.ID, JobID: ja.ID},
		{CandidateID: c1.ID, JobID: jb.ID},
	} {
		require.NoError(t, apps.Create(ctx, a))
	}

	applied, err := apps.JobsByCandidate(ctx, c1.ID)
	require.NoError(t, err)
	titles := make([]string, 0, len(applied))
	for _, j := range applied {
		titles = append(titles, j.Title)
		assert.Equal(t, r.ID, j.RecruiterID)
	}
	assert.Equal(t, []string{"B", "A", "B"}, titles)

	emails, err := apps.ApplicantEmails(ctx, ja.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c2@example.com", "c1@example.com"}, emails)

	none, err := apps.JobsByCandidate(ctx, c2.ID+100)
	require.NoError(t, err)
	assert.Empty(t, none)
}
