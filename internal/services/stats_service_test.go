package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsUsers struct {
	count int64
	err   error
}

func (repo fakeStatsUsers) CountUsers() (int64, error) { return repo.count, repo.err }

type fakeStatsRecords struct {
	count  int64
	impact float64
	err    error
}

func (repo fakeStatsRecords) CountAll() (int64, error) { return repo.count, repo.err }

func (repo fakeStatsRecords) SumImpact() (float64, error) { return repo.impact, repo.err }

func TestAggregateRoundsImpactToTwoDecimals(t *testing.T) {
	service := NewStatsService(
		fakeStatsUsers{count: 3},
		fakeStatsRecords{count: 7, impact: 3.14159},
	)

	stats, err := service.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalUsers: 3, TotalActions: 7, TotalImpact: 3.14}, stats)
}

func TestAggregateEmptyDatabase(t *testing.T) {
	service := NewStatsService(fakeStatsUsers{}, fakeStatsRecords{})

	stats, err := service.Aggregate()
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

func TestAggregatePropagatesRepositoryErrors(t *testing.T) {
	wantErr := errors.New("database gone")
	service := NewStatsService(fakeStatsUsers{err: wantErr}, fakeStatsRecords{})

	_, err := service.Aggregate()
	assert.ErrorIs(t, err, wantErr)
}
