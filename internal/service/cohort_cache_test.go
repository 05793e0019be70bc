package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"cohort-tools-be/internal/cache"
	"cohort-tools-be/internal/models"
	"cohort-tools-be/internal/service"

	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory cache.Cache so tests can observe what the
// services store and invalidate.
type fakeCache struct {
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	value, exists := f.data[key]
	if !exists {
		return "", fmt.Errorf("key not found")
	}
	return value, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return f.Set(ctx, key, string(data), expiration)
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := f.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (f *fakeCache) has(key string) bool {
	_, exists := f.data[key]
	return exists
}

func TestGetCohort_CacheHitSkipsStore(t *testing.T) {
	repo := newFakeCohortRepo()
	cacheClient := newFakeCache()
	svc := service.NewCohortService(repo, cacheClient)

	cohort, err := svc.CreateCohort(validCohortRequest())
	require.NoError(t, err)

	// First read fills the cache from the store
	first, err := svc.GetCohort(cohort.ID)
	require.NoError(t, err)
	require.Equal(t, 1, repo.finds)
	require.True(t, cacheClient.has(cache.CohortKey(cohort.ID)))

	// Second read is served from the cache
	second, err := svc.GetCohort(cohort.ID)
	require.NoError(t, err)
	require.Equal(t, 1, repo.finds)
	require.Equal(t, first.CohortSlug, second.CohortSlug)
}

func TestUpdateCohort_InvalidatesCache(t *testing.T) {
	repo := newFakeCohortRepo()
	cacheClient := newFakeCache()
	svc := service.NewCohortService(repo, cacheClient)

	cohort, err := svc.CreateCohort(validCohortRequest())
	require.NoError(t, err)

	_, err = svc.GetCohort(cohort.ID)
	require.NoError(t, err)
	require.True(t, cacheClient.has(cache.CohortKey(cohort.ID)))

	newName := "FT Web Dev 2026 (Remote)"
	_, err = svc.UpdateCohort(cohort.ID, &models.UpdateCohortRequest{CohortName: &newName})
	require.NoError(t, err)
	require.False(t, cacheClient.has(cache.CohortKey(cohort.ID)))

	// The next read sees the updated record, not a stale cached copy
	fresh, err := svc.GetCohort(cohort.ID)
	require.NoError(t, err)
	require.Equal(t, newName, fresh.CohortName)
}

func TestDeleteCohort_InvalidatesCache(t *testing.T) {
	repo := newFakeCohortRepo()
	cacheClient := newFakeCache()
	svc := service.NewCohortService(repo, cacheClient)

	cohort, err := svc.CreateCohort(validCohortRequest())
	require.NoError(t, err)

	_, err = svc.GetCohort(cohort.ID)
	require.NoError(t, err)
	require.True(t, cacheClient.has(cache.CohortKey(cohort.ID)))

	require.NoError(t, svc.DeleteCohort(cohort.ID))
	require.False(t, cacheClient.has(cache.CohortKey(cohort.ID)))
}

func TestStudentPopulate_SharesCohortCacheKey(t *testing.T) {
	studentRepo := newFakeStudentRepo()
	cohortRepo := newFakeCohortRepo()
	cacheClient := newFakeCache()
	studentSvc := service.NewStudentService(studentRepo, cohortRepo, cacheClient)
	cohortSvc := service.NewCohortService(cohortRepo, cacheClient)

	cohort := seedCohort(t, cohortRepo, "ft-wd-1")
	created, err := studentSvc.CreateStudent(validStudentRequest(&cohort.ID))
	require.NoError(t, err)

	// Populate fills the cache under the same key cohort reads use
	require.True(t, cacheClient.has(cache.CohortKey(cohort.ID)))

	cohortRepo.finds = 0
	fromCohortRead, err := cohortSvc.GetCohort(cohort.ID)
	require.NoError(t, err)
	require.Equal(t, 0, cohortRepo.finds, "cohort read should be served by the cache populate warmed")
	require.Equal(t, "ft-wd-1", fromCohortRead.CohortSlug)

	// Updating through the cohort service invalidates the shared key, so
	// the next populate embeds the fresh record
	newName := "FT Web Dev (Berlin)"
	_, err = cohortSvc.UpdateCohort(cohort.ID, &models.UpdateCohortRequest{CohortName: &newName})
	require.NoError(t, err)
	require.False(t, cacheClient.has(cache.CohortKey(cohort.ID)))

	student, err := studentSvc.GetStudent(created.ID)
	require.NoError(t, err)
	require.NotNil(t, student.Cohort)
	require.Equal(t, newName, student.Cohort.CohortName)
}
