package ports

import "github.com/RastaKolobar/pyre-check/internal/core/domain"

// FunctionDefinition is the narrow shape the recheck driver needs out of the
// unannotated-global read view: enough to locate a define's containing
// module without pulling in the full parsed payload.
type FunctionDefinition struct {
	Qualifier string
	Module    string
}

// ParserUpdateResult is what the parser/module-tracker layer hands back from
// UpdateThisAndAllPrecedingEnvironments. It terminates the UpdateResult
// chain, so it additionally carries module-level bookkeeping the spec names
// explicitly: invalidated modules, per-module update records, newly
// discovered function qualified names, and existing functions whose bodies
// changed (DefineUpdates) — the latter never show up as TypeCheckDefine
// consumers of an unchanged UnannotatedGlobal, so the driver has to fold
// them into its trigger set explicitly rather than relying on the update
// chain to surface them.
type ParserUpdateResult struct {
	Result             *domain.UpdateResult
	InvalidatedModules []string
	ModuleUpdates      []string
	DefineAdditions    []string
	DefineUpdates      []string
}

// ParserLayer is the outermost, external-collaborator layer named in the
// spec: everything the recheck driver needs from the parser/module tracker,
// without the driver knowing how parsing or module tracking actually work.
//
//go:generate mockgen -source=parser_layer.go -destination=mocks/mock_parser_layer.go -package=mocks
type ParserLayer interface {
	// UpdateThisAndAllPrecedingEnvironments updates the parser layer (and,
	// transitively, every layer beneath it, of which there are none at the
	// bottom of the stack) from the given changed artifact paths.
	UpdateThisAndAllPrecedingEnvironments(paths []string) (ParserUpdateResult, error)

	// GetFunctionDefinition looks up name in the unannotated-global read
	// view; ok is false if name names no known define.
	GetFunctionDefinition(name string) (FunctionDefinition, bool)

	// ModuleDeclarations lists every qualified name module currently
	// declares (functions, classes, and top-level globals). The
	// unannotated-globals layer uses this to fan an AstParse(module)
	// descriptor out to the Keys it must invalidate.
	ModuleDeclarations(module string) []string
}
