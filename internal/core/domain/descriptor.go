package domain

// DescriptorKind tags the variant of a DependencyDescriptor.
type DescriptorKind uint8

const (
	// KindAstParse names the parsed AST of a single module.
	KindAstParse DescriptorKind = iota
	// KindUnannotatedGlobal names the unresolved top-level globals of a module,
	// as produced directly off the parse tree, before class-hierarchy or type
	// resolution have run.
	KindUnannotatedGlobal
	// KindClassSummary names a class's resolved base list and MRO.
	KindClassSummary
	// KindResolvedGlobal names a global whose imports/references have been
	// resolved to concrete definitions, but not yet typed.
	KindResolvedGlobal
	// KindTypeOfGlobal names the inferred or annotated type of a single global.
	KindTypeOfGlobal
	// KindTypeCheckDefine names the type-checking result (annotations plus
	// diagnostics) of a single function or method body.
	KindTypeCheckDefine
	// KindLayerPrivate is an escape hatch for a layer's own bookkeeping facts
	// that never need to be named by another layer's filter_upstream_dependency.
	KindLayerPrivate
)

// String names the kind for diagnostics and descriptor text rendering.
func (k DescriptorKind) String() string {
	switch k {
	case KindAstParse:
		return "AstParse"
	case KindUnannotatedGlobal:
		return "UnannotatedGlobal"
	case KindClassSummary:
		return "ClassSummary"
	case KindResolvedGlobal:
		return "ResolvedGlobal"
	case KindTypeOfGlobal:
		return "TypeOfGlobal"
	case KindTypeCheckDefine:
		return "TypeCheckDefine"
	case KindLayerPrivate:
		return "LayerPrivate"
	default:
		return "Unknown"
	}
}

// DependencyDescriptor is a tagged, hashable, totally-ordered identifier for a
// single unit of derived fact whose recomputation may be triggered. Name
// carries the layer-specific key the descriptor names — a module path for
// AstParse/UnannotatedGlobal, a qualified name for everything else. Layer
// disambiguates KindLayerPrivate descriptors that belong to different layers
// but would otherwise collide on Name.
type DependencyDescriptor struct {
	Kind  DescriptorKind
	Name  InternedString
	Layer InternedString
}

// NewAstParse describes the parsed AST of a module.
func NewAstParse(module string) DependencyDescriptor {
	return DependencyDescriptor{Kind: KindAstParse, Name: NewInternedString(module)}
}

// NewUnannotatedGlobal describes a module's unresolved global table.
func NewUnannotatedGlobal(module string) DependencyDescriptor {
	return DependencyDescriptor{Kind: KindUnannotatedGlobal, Name: NewInternedString(module)}
}

// NewClassSummary describes a class's resolved hierarchy.
func NewClassSummary(qualifiedClassName string) DependencyDescriptor {
	return DependencyDescriptor{Kind: KindClassSummary, Name: NewInternedString(qualifiedClassName)}
}

// NewResolvedGlobal describes a global whose references have been resolved.
func NewResolvedGlobal(qualifiedName string) DependencyDescriptor {
	return DependencyDescriptor{Kind: KindResolvedGlobal, Name: NewInternedString(qualifiedName)}
}

// NewTypeOfGlobal describes the inferred type of a global.
func NewTypeOfGlobal(qualifiedName string) DependencyDescriptor {
	return DependencyDescriptor{Kind: KindTypeOfGlobal, Name: NewInternedString(qualifiedName)}
}

// NewTypeCheckDefine describes the type-checking result of a function body.
func NewTypeCheckDefine(qualifiedName string) DependencyDescriptor {
	return DependencyDescriptor{Kind: KindTypeCheckDefine, Name: NewInternedString(qualifiedName)}
}

// NewLayerPrivate describes a fact private to one layer's own bookkeeping.
func NewLayerPrivate(layer, name string) DependencyDescriptor {
	return DependencyDescriptor{
		Kind:  KindLayerPrivate,
		Name:  NewInternedString(name),
		Layer: NewInternedString(layer),
	}
}

// String renders a short textual description, e.g. "TypeCheckDefine(m.f)".
func (d DependencyDescriptor) String() string {
	if d.Kind == KindLayerPrivate {
		return d.Kind.String() + "[" + d.Layer.String() + "](" + d.Name.String() + ")"
	}
	return d.Kind.String() + "(" + d.Name.String() + ")"
}

// Compare gives DependencyDescriptor a total order: by Kind, then Layer, then
// Name. Used wherever iteration order must be deterministic (chunk policy
// splitting, registry dumps).
func (d DependencyDescriptor) Compare(other DependencyDescriptor) int {
	if d.Kind != other.Kind {
		if d.Kind < other.Kind {
			return -1
		}
		return 1
	}
	if c := d.Layer.Compare(other.Layer); c != 0 {
		return c
	}
	return d.Name.Compare(other.Name)
}
