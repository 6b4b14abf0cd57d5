package inferstub_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RastaKolobar/pyre-check/internal/adapters/inferstub"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/scheduler"
)

func TestInference_PopulateForDefinitions_ReturnsOneResultPerDefine(t *testing.T) {
	inf := inferstub.New()
	sched := scheduler.New(2)

	results, err := inf.PopulateForDefinitions(context.Background(), sched, nil, []ports.DefineTrigger{
		{Name: "m.f"}, {Name: "m.g"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Unknown", results[0].ReturnType)
	assert.Empty(t, results[0].Diagnostics)
}

func TestInference_PopulateForDefinitions_EmptyInput(t *testing.T) {
	inf := inferstub.New()
	sched := scheduler.New(2)

	results, err := inf.PopulateForDefinitions(context.Background(), sched, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestInference_Fails_ProducesDiagnostic(t *testing.T) {
	inf := &inferstub.Inference{Fails: func(q string) bool { return q == "m.bad" }}
	sched := scheduler.New(2)

	results, err := inf.PopulateForDefinitions(context.Background(), sched, nil, []ports.DefineTrigger{{Name: "m.bad"}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Len(t, results[0].Diagnostics, 1)
	assert.Equal(t, "m", results[0].Diagnostics[0].Module)
	assert.Equal(t, "error", results[0].Diagnostics[0].Severity)
}

func TestPostprocessing_Run_EmptyModulesIsNoop(t *testing.T) {
	pp := inferstub.NewPostprocessing()
	sched := scheduler.New(2)

	diags, err := pp.Run(context.Background(), sched, nil)
	require.NoError(t, err)
	assert.Empty(t, diags)
}
