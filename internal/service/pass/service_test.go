package pass

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklogix/attendance-backend-go/internal/domain/pass"
)

type fakePassRepo struct {
	latest      []pass.Pass
	onsite      []pass.Pass
	onsiteCalls int
}

func (r *fakePassRepo) FindByUsernameAndRange(_ context.Context, _ string, _, _ time.Time) ([]pass.Pass, error) {
	return nil, nil
}

func (r *fakePassRepo) FindLatest(_ context.Context, username string, limit int) ([]pass.Pass, error) {
	if username == "" {
		return r.latest, nil
	}
	var out []pass.Pass
	for _, ev := range r.latest {
		if ev.Username == username {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (r *fakePassRepo) FindOnsite(_ context.Context) ([]pass.Pass, error) {
	r.onsiteCalls++
	return r.onsite, nil
}

func event(id int64, username string) pass.Pass {
	return pass.Pass{
		ID:       id,
		Category: pass.CategoryIn,
		Time:     time.Date(2025, 2, 10, 8, 0, 0, 0, time.Local),
		Username: username,
	}
}

func TestListPassesFiltersByUsername(t *testing.T) {
	repo := &fakePassRepo{latest: []pass.Pass{event(1, "jnovak"), event(2, "adrab")}}
	svc := NewPassService(repo)

	all, err := svc.ListPasses(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListPasses(context.Background(), "jnovak")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "jnovak", mine[0].Username)
}

func TestListOnsiteCachesUntilEvicted(t *testing.T) {
	repo := &fakePassRepo{onsite: []pass.Pass{event(1, "jnovak")}}
	svc := NewPassService(repo)
	ctx := context.Background()

	_, err := svc.ListOnsite(ctx)
	require.NoError(t, err)
	_, err = svc.ListOnsite(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.onsiteCalls, "second read served from cache")

	require.NoError(t, svc.EvictOnsite(ctx))
	_, err = svc.ListOnsite(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.onsiteCalls, "eviction forces a reload")
}
