package mapreduce_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/mapreduce"
	"github.com/RastaKolobar/pyre-check/internal/engine/scheduler"
)

func TestCollectedMapReduce_SumsAllItems(t *testing.T) {
	sched := scheduler.New(4)
	policy := ports.FixedChunkCountPolicy(1, 2, 5)

	inputs := make([]int, 50)
	for i := range inputs {
		inputs[i] = i + 1
	}

	sum, touched, err := mapreduce.CollectedMapReduce(
		context.Background(),
		sched,
		policy,
		func(ctx context.Context, item int, collector *domain.Collector) (int, error) {
			collector.Touch(domain.Handle(item))
			return item, nil
		},
		func(acc int, local int) int { return acc + local },
		inputs,
		0,
	)

	require.NoError(t, err)
	assert.Equal(t, 1275, sum)
	assert.Len(t, touched, 50)
}

func TestCollectedMapReduce_EmptyInput(t *testing.T) {
	sched := scheduler.New(2)
	policy := ports.FixedChunkCountPolicy(1, 100, 5)

	sum, touched, err := mapreduce.CollectedMapReduce(
		context.Background(),
		sched,
		policy,
		func(ctx context.Context, item int, collector *domain.Collector) (int, error) {
			t.Fatalf("map should not be called for an empty input set")
			return 0, nil
		},
		func(acc int, local int) int { return acc + local },
		nil,
		7,
	)

	require.NoError(t, err)
	assert.Equal(t, 7, sum)
	assert.Empty(t, touched)
}

func TestCollectedMapReduce_PropagatesMapError(t *testing.T) {
	sched := scheduler.New(4)
	policy := ports.FixedChunkCountPolicy(1, 1, 5)
	boom := errors.New("boom")

	_, _, err := mapreduce.CollectedMapReduce(
		context.Background(),
		sched,
		policy,
		func(ctx context.Context, item int, collector *domain.Collector) (int, error) {
			if item == 3 {
				return 0, boom
			}
			return item, nil
		},
		func(acc int, local int) int { return acc + local },
		[]int{1, 2, 3, 4},
		0,
	)

	require.ErrorIs(t, err, boom)
}
