// Package typestack wires the four concrete EnvironmentLayer instances that
// sit between the parser layer and the type environment: unannotated
// globals, class hierarchy, resolved globals, and the type of each global.
// Each is a layers.Layer instantiated over a small Value payload and a
// Bridge grounded in ports.ParserLayer or the layer immediately beneath it.
package typestack

import (
	"fmt"
	"slices"

	"github.com/RastaKolobar/pyre-check/internal/core/domain"
)

// UnannotatedGlobal is what the unannotated-globals layer stores for one
// qualified name: which module declared it, and whether it is a class.
type UnannotatedGlobal struct {
	Module  string
	IsClass bool
}

func (v UnannotatedGlobal) Equal(other domain.Value) bool {
	o, ok := other.(UnannotatedGlobal)
	return ok && o == v
}

func (v UnannotatedGlobal) String() string {
	return fmt.Sprintf("UnannotatedGlobal{module=%s, isClass=%t}", v.Module, v.IsClass)
}

// ClassSummary is what the class-hierarchy layer stores for one qualified
// class name. Base-list extraction needs a real AST and is left empty here;
// see DESIGN.md.
type ClassSummary struct {
	Bases []string
}

func (v ClassSummary) Equal(other domain.Value) bool {
	o, ok := other.(ClassSummary)
	return ok && slices.Equal(o.Bases, v.Bases)
}

func (v ClassSummary) String() string {
	return fmt.Sprintf("ClassSummary{bases=%v}", v.Bases)
}

// ResolvedGlobal is what the resolved-globals layer stores for one
// qualified name: a coarse classification of what it resolves to.
type ResolvedGlobal struct {
	Kind string // "class" or "variable"
}

func (v ResolvedGlobal) Equal(other domain.Value) bool {
	o, ok := other.(ResolvedGlobal)
	return ok && o == v
}

func (v ResolvedGlobal) String() string {
	return fmt.Sprintf("ResolvedGlobal{kind=%s}", v.Kind)
}

// TypeOfGlobal is what the annotated-globals layer stores for one qualified
// name: its inferred or annotated type name.
type TypeOfGlobal struct {
	TypeName string
}

func (v TypeOfGlobal) Equal(other domain.Value) bool {
	o, ok := other.(TypeOfGlobal)
	return ok && o == v
}

func (v TypeOfGlobal) String() string {
	return fmt.Sprintf("TypeOfGlobal{type=%s}", v.TypeName)
}
