package recheck_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RastaKolobar/pyre-check/internal/adapters/inferstub"
	"github.com/RastaKolobar/pyre-check/internal/adapters/parserstub"
	"github.com/RastaKolobar/pyre-check/internal/adapters/procmem"
	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/engine/recheck"
	"github.com/RastaKolobar/pyre-check/internal/engine/scheduler"
	"github.com/RastaKolobar/pyre-check/internal/engine/typeenv"
	"github.com/RastaKolobar/pyre-check/internal/engine/typestack"
)

type harness struct {
	driver *recheck.Driver
	dir    string
}

func newHarness(t *testing.T, inf *inferstub.Inference) *harness {
	t.Helper()
	dir := t.TempDir()
	registry := domain.NewRegistry()
	parser := parserstub.New(registry)
	sched := scheduler.New(2)
	policy := ports.FixedChunkCountPolicy(1, 100, 5)
	stack := typestack.New(registry, parser, sched, policy, 4096)
	env := typeenv.New(registry)
	errors := domain.NewErrorTable()
	if inf == nil {
		inf = inferstub.New()
	}
	driver := recheck.New(registry, sched, stack, env, errors, inf, inferstub.NewPostprocessing(), procmem.New())
	return &harness{driver: driver, dir: dir}
}

func (h *harness) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(h.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRecheck_EmptyChange_YieldsNothing(t *testing.T) {
	h := newHarness(t, nil)

	modules, diagnostics, err := h.driver.Recheck(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, modules)
	assert.Empty(t, diagnostics)
}

func TestRecheck_SingleFunctionEdit_TriggersOnlyThatModule(t *testing.T) {
	h := newHarness(t, nil)
	path := h.write(t, "m.py", "def f():\n    return 1\n\ndef g():\n    return 2\n")

	_, _, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)

	h.write(t, "m.py", "def f():\n    return 99\n\ndef g():\n    return 2\n")
	modules, _, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)

	assert.Equal(t, []string{"m"}, modules)
}

func TestRecheck_EditedFunctionBody_IsReInferred(t *testing.T) {
	// The stub's failure predicate sees only the qualified name, so it is
	// switched on after the first recheck to stand for f's second body.
	edited := false
	failing := &inferstub.Inference{Fails: func(q string) bool { return edited && q == "m.f" }}
	h := newHarness(t, failing)
	path := h.write(t, "m.py", "def f():\n    return 1\n")

	_, diags, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)
	assert.Empty(t, diags, "f's first body never matched the failure predicate")
	edited = true

	// Only the body changes; the signature (and so the UnannotatedGlobal the
	// define's TypeCheckDefine trigger reads) is unchanged. The define must
	// still be re-inferred, not skipped by the update chain's equality
	// short-circuit.
	h.write(t, "m.py", "def f():\n    return \"not an int\"\n")
	modules, diags, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)

	assert.Contains(t, modules, "m")
	require.Len(t, diags, 1)
	assert.Equal(t, "m", diags[0].Module)
	assert.Contains(t, diags[0].Message, "m.f")
}

func TestRecheck_NewFunctionAdded_IsReInferred(t *testing.T) {
	h := newHarness(t, nil)
	path := h.write(t, "m.py", "def f():\n    return 1\n")

	_, _, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)

	h.write(t, "m.py", "def f():\n    return 1\n\ndef h():\n    return 2\n")
	modules, _, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)

	assert.Contains(t, modules, "m")
	ann, ok := h.driver.Environment.Get(nil, nil, "m.h")
	require.True(t, ok)
	assert.Equal(t, "Unknown", ann.ReturnType)
}

func TestRecheck_DeletedModule_DropsErrorTableEntries(t *testing.T) {
	failing := &inferstub.Inference{Fails: func(q string) bool { return q == "m.f" }}
	h := newHarness(t, failing)
	path := h.write(t, "m.py", "def f():\n    return 1\n")

	_, diags, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)
	require.NotEmpty(t, diags)
	require.NotEmpty(t, h.driver.Errors.Get("m"))

	require.NoError(t, os.Remove(path))
	modules, _, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)

	assert.NotContains(t, modules, "m")
	assert.Empty(t, h.driver.Errors.Get("m"))
}

func TestRecheck_EqualityShortCircuit_NoWork(t *testing.T) {
	h := newHarness(t, nil)
	path := h.write(t, "m.py", "def f():\n    return 1\n")

	_, _, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)

	// Rewrite to byte-identical content: no change at all.
	h.write(t, "m.py", "def f():\n    return 1\n")
	modules, diagnostics, err := h.driver.Recheck(context.Background(), []string{path})
	require.NoError(t, err)

	assert.Empty(t, modules)
	assert.Empty(t, diagnostics)
}
