package typestack_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/RastaKolobar/pyre-check/internal/adapters/cas"
	"github.com/RastaKolobar/pyre-check/internal/adapters/parserstub"
	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
	"github.com/RastaKolobar/pyre-check/internal/core/ports/mocks"
	"github.com/RastaKolobar/pyre-check/internal/engine/scheduler"
	"github.com/RastaKolobar/pyre-check/internal/engine/typestack"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStack_UpdateAll_PropagatesThroughEveryLayer(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.py", "def f():\n    return 1\n\nclass C:\n    pass\n\nx = 1\n")

	registry := domain.NewRegistry()
	parser := parserstub.New(registry)
	sched := scheduler.New(2)
	policy := ports.FixedChunkCountPolicy(1, 100, 5)
	stack := typestack.New(registry, parser, sched, policy, 4096)

	parserResult, err := parser.UpdateThisAndAllPrecedingEnvironments([]string{path})
	require.NoError(t, err)

	result, err := stack.UpdateAll(context.Background(), parserResult.Result)
	require.NoError(t, err)
	require.NotNil(t, result)

	ug, err := stack.Unannotated.Get(context.Background(), nil, nil, "m.f")
	require.NoError(t, err)
	assert.Equal(t, "m", ug.Module)
	assert.False(t, ug.IsClass)

	classVal, err := stack.Unannotated.Get(context.Background(), nil, nil, "m.C")
	require.NoError(t, err)
	assert.True(t, classVal.IsClass)

	rg, err := stack.Resolved.Get(context.Background(), nil, nil, "m.C")
	require.NoError(t, err)
	assert.Equal(t, "class", rg.Kind)

	tg, err := stack.Annotated.Get(context.Background(), nil, nil, "m.C")
	require.NoError(t, err)
	assert.Equal(t, "type[m.C]", tg.TypeName)

	tgVar, err := stack.Annotated.Get(context.Background(), nil, nil, "m.f")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", tgVar.TypeName)
}

func TestStack_UpdateAll_RecomputesOnSecondEdit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.py", "def f():\n    return 1\n")

	registry := domain.NewRegistry()
	parser := parserstub.New(registry)
	sched := scheduler.New(2)
	policy := ports.FixedChunkCountPolicy(1, 100, 5)
	stack := typestack.New(registry, parser, sched, policy, 4096)

	parserResult, err := parser.UpdateThisAndAllPrecedingEnvironments([]string{path})
	require.NoError(t, err)
	_, err = stack.UpdateAll(context.Background(), parserResult.Result)
	require.NoError(t, err)

	consumer := domain.Handle(0)
	_, err = stack.Annotated.Get(context.Background(), nil, &consumer, "m.f")
	require.NoError(t, err)

	writeFile(t, dir, "m.py", "def f():\n    return 1\n\ndef g():\n    return 2\n")
	parserResult, err = parser.UpdateThisAndAllPrecedingEnvironments([]string{path})
	require.NoError(t, err)
	assert.Contains(t, parserResult.DefineAdditions, "m.g")

	result, err := stack.UpdateAll(context.Background(), parserResult.Result)
	require.NoError(t, err)
	require.NotNil(t, result)

	ug, err := stack.Unannotated.Get(context.Background(), nil, nil, "m.g")
	require.NoError(t, err)
	assert.Equal(t, "m", ug.Module)
}

func TestStack_NewForTesting_UsesDeterministicDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "m.py", "def f():\n    return 1\n")

	registry := domain.NewRegistry()
	parser := parserstub.New(registry)
	stack := typestack.NewForTesting(registry, parser)

	assert.Same(t, parser, stack.AstEnvironment())
	assert.Equal(t, ports.FixedChunkCountPolicy(1, 1, 1), stack.Configuration())

	parserResult, err := parser.UpdateThisAndAllPrecedingEnvironments([]string{path})
	require.NoError(t, err)
	result, err := stack.UpdateAll(context.Background(), parserResult.Result)
	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestStack_StoreLoad_RoundTripsThroughARealStore(t *testing.T) {
	registry := domain.NewRegistry()
	parser := parserstub.New(registry)
	stack := typestack.NewForTesting(registry, parser)

	store := cas.NewStore()
	root := t.TempDir()

	require.NoError(t, stack.Store(store, root))
	require.NoError(t, stack.Load(store, root))
}

// TestStack_UpdateAll_FansOutThroughAMockedParserLayer swaps the real
// parserstub.Parser for a mock: the stack only ever calls ParserLayer
// through the narrow ports.ParserLayer seam, so it cannot tell the
// difference, and FilterUpstreamDependency's AstParse-to-declarations fan
// out is exercised by the mock's ModuleDeclarations expectation instead of
// a real scan.
func TestStack_UpdateAll_FansOutThroughAMockedParserLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	parser := mocks.NewMockParserLayer(ctrl)

	registry := domain.NewRegistry()
	stack := typestack.NewForTesting(registry, parser)

	parser.EXPECT().ModuleDeclarations("m").Return([]string{"m.f"}).AnyTimes()
	parser.EXPECT().GetFunctionDefinition("m.f").Return(ports.FunctionDefinition{Qualifier: "m.f", Module: "m"}, true).AnyTimes()

	handle := registry.Register(domain.NewAstParse("m"))
	parserResult := domain.NewBaseUpdateResult(domain.HandleSet{handle: struct{}{}}, []string{"m"})

	result, err := stack.UpdateAll(context.Background(), parserResult)
	require.NoError(t, err)
	require.NotNil(t, result)

	ug, err := stack.Unannotated.Get(context.Background(), nil, nil, "m.f")
	require.NoError(t, err)
	assert.Equal(t, "m", ug.Module)
	assert.False(t, ug.IsClass)
}
