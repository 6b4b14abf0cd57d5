// Package parserstub implements ports.ParserLayer with a line-oriented
// scanner standing in for the real parser and module tracker — both
// explicitly out of scope for the engine itself (only the narrow
// ParserLayer seam is).
package parserstub

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

var (
	defRe   = regexp.MustCompile(`^def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	classRe = regexp.MustCompile(`^class\s+([A-Za-z_][A-Za-z0-9_]*)\s*[:(]`)
	globalRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(:[^=]+)?=`)
)

// moduleState is what Parser remembers about one module between updates.
type moduleState struct {
	hash         uint64
	declarations []string
	functions    map[string]ports.FunctionDefinition
	bodyHashes   map[string]uint64
}

// Parser implements ports.ParserLayer over a tree of source files, using
// xxhash content hashing to detect the structural-equality short-circuit:
// an edit that rewrites a module's text without changing its content hash
// triggers nothing downstream.
type Parser struct {
	registry *domain.Registry

	mu      sync.Mutex
	modules map[string]moduleState
}

// New creates a Parser backed by registry for AstParse handle interning.
func New(registry *domain.Registry) *Parser {
	return &Parser{
		registry: registry,
		modules:  make(map[string]moduleState),
	}
}

// UpdateThisAndAllPrecedingEnvironments rescans every changed path, diffing
// each module's content hash against what was last seen.
func (p *Parser) UpdateThisAndAllPrecedingEnvironments(paths []string) (ports.ParserUpdateResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	triggered := make(domain.HandleSet)
	var invalidated, updated, additions, defineUpdates []string

	for _, path := range paths {
		module := moduleName(path)

		data, err := os.ReadFile(path) //nolint:gosec // path comes from the orchestrator's own change list
		if err != nil {
			if os.IsNotExist(err) {
				p.forgetModule(module, &invalidated)
				continue
			}
			return ports.ParserUpdateResult{}, zerr.With(zerr.Wrap(err, "failed to read source file"), "path", path)
		}

		hash := xxhash.Sum64(data)
		existing, known := p.modules[module]
		if known && existing.hash == hash {
			continue // structurally unchanged: no AstParse trigger, no downstream work
		}

		declarations, functions, bodyHashes := scan(module, data)

		for name, bodyHash := range bodyHashes {
			oldHash, existed := existing.bodyHashes[name]
			switch {
			case !known || !existed:
				additions = append(additions, name)
			case oldHash != bodyHash:
				// signature unchanged but the body did: the unannotated-global
				// the define depends on never changes, so the update chain's
				// own equality short-circuit would otherwise swallow this edit.
				defineUpdates = append(defineUpdates, name)
			}
		}

		p.modules[module] = moduleState{hash: hash, declarations: declarations, functions: functions, bodyHashes: bodyHashes}
		updated = append(updated, module)
		invalidated = append(invalidated, module)

		handle := p.registry.Register(domain.NewAstParse(module))
		triggered[handle] = struct{}{}
	}

	sort.Strings(additions)
	sort.Strings(defineUpdates)
	sort.Strings(updated)
	sort.Strings(invalidated)

	return ports.ParserUpdateResult{
		Result:             domain.NewBaseUpdateResult(triggered, invalidated),
		InvalidatedModules: invalidated,
		ModuleUpdates:      updated,
		DefineAdditions:    additions,
		DefineUpdates:      defineUpdates,
	}, nil
}

func (p *Parser) forgetModule(module string, invalidated *[]string) {
	if _, known := p.modules[module]; !known {
		return
	}
	delete(p.modules, module)
	*invalidated = append(*invalidated, module)
}

// GetFunctionDefinition looks name up across every known module.
func (p *Parser) GetFunctionDefinition(name string) (ports.FunctionDefinition, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, state := range p.modules {
		if def, ok := state.functions[name]; ok {
			return def, true
		}
	}
	return ports.FunctionDefinition{}, false
}

// ModuleDeclarations lists module's currently known qualified names.
func (p *Parser) ModuleDeclarations(module string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, ok := p.modules[module]
	if !ok {
		return nil
	}
	out := make([]string, len(state.declarations))
	copy(out, state.declarations)
	return out
}

// moduleName is the file's base name without its extension: "/src/pkg/m.py"
// is module "m". Directories are not part of the name, so same-named files
// in different directories map to the same module.
func moduleName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// scan is a deliberately simple line-oriented stand-in for a real parser:
// it recognizes top-level def/class/assignment statements and nothing
// else. Indented lines (methods, nested functions) are skipped — their
// qualified names would need a real AST to resolve correctly. Each def's
// body (every indented line up to the next top-level statement) is hashed
// on its own so a body-only edit can be told apart from a signature change.
func scan(module string, data []byte) ([]string, map[string]ports.FunctionDefinition, map[string]uint64) {
	functions := make(map[string]ports.FunctionDefinition)
	bodyHashes := make(map[string]uint64)
	var declarations []string

	var currentDef string
	var body bytes.Buffer
	flush := func() {
		if currentDef != "" {
			bodyHashes[currentDef] = xxhash.Sum64(body.Bytes())
		}
		currentDef = ""
		body.Reset()
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if line[0] == ' ' || line[0] == '\t' {
			body.WriteString(line)
			body.WriteByte('\n')
			continue
		}

		flush()

		switch {
		case defRe.MatchString(line):
			name := defRe.FindStringSubmatch(line)[1]
			qualified := module + "." + name
			functions[qualified] = ports.FunctionDefinition{Qualifier: qualified, Module: module}
			declarations = append(declarations, qualified)
			currentDef = qualified
			body.WriteString(line)
			body.WriteByte('\n')
		case classRe.MatchString(line):
			name := classRe.FindStringSubmatch(line)[1]
			declarations = append(declarations, module+"."+name)
		case globalRe.MatchString(line):
			name := globalRe.FindStringSubmatch(line)[1]
			declarations = append(declarations, module+"."+name)
		}
	}
	flush()

	sort.Strings(declarations)
	return declarations, functions, bodyHashes
}
