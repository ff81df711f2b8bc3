package streamer

// Minimal parenthesization for expression-like producers. A parent operation
// asks a prospective operand, at tree-construction time, whether it must be
// wrapped in delimiters given the parent's priority and associativity and the
// operand's side. The decision is baked into the tree before any stream is
// produced and never revisited while streaming.

// Assoc resolves grouping between equal-priority operations.
type Assoc int

const (
	// AssocLeft groups a-b-c as (a-b)-c.
	AssocLeft Assoc = iota
	// AssocRight groups a**b**c as a**(b**c).
	AssocRight
	// AssocNone marks operations with no grouping rule, such as unary
	// prefixes; equal-priority operands are always wrapped.
	AssocNone
)

// Side is the position an operand takes under its parent operation.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// Operand is the opt-in extension of Renderable for producers that take part
// in minimal parenthesization. Priority is a non-negative integer; higher
// binds tighter.
type Operand interface {
	Renderable
	Priority() int
	Associativity() Assoc
}

// WrapDecider overrides the default wrap algorithm. A producer implementing
// it decides for itself whether adoption under parent at side requires
// delimiters; it may defer back to DefaultNeedsWrap for the cases it does not
// care about.
type WrapDecider interface {
	NeedsWrap(parent Operand, side Side) bool
}

// DefaultNeedsWrap is the default wrap algorithm between two prioritized
// producers:
//
//   - strictly lower child priority wraps;
//   - equal priority wraps the operand on the non-associating side, so
//     a-(b-c) keeps its delimiters while (a-b)-c sheds them;
//   - strictly higher child priority never wraps.
func DefaultNeedsWrap(child, parent Operand, side Side) bool {
	switch {
	case child.Priority() < parent.Priority():
		return true
	case child.Priority() > parent.Priority():
		return false
	}
	switch parent.Associativity() {
	case AssocLeft:
		return side == SideRight
	case AssocRight:
		return side == SideLeft
	default:
		return true
	}
}

// NeedsWrap decides whether child must be wrapped when adopted as the side
// operand of parent. Producers implementing WrapDecider rule on it
// themselves; plain Operands get DefaultNeedsWrap; producers declaring no
// priority at all (leaf literals) bind maximally and are never wrapped.
func NeedsWrap(child Renderable, parent Operand, side Side) bool {
	if decider, ok := child.(WrapDecider); ok {
		return decider.NeedsWrap(parent, side)
	}
	if operand, ok := child.(Operand); ok {
		return DefaultNeedsWrap(operand, parent, side)
	}
	return false
}

// RespectPriority returns child as-is, or substituted by a
// parenthesis-wrapping adapter when NeedsWrap says adoption under parent at
// side would change meaning. Parents call it once per operand while
// constructing themselves; nothing is re-decided during streaming.
func RespectPriority(child Renderable, parent Operand, side Side) Renderable {
	if NeedsWrap(child, parent, side) {
		return Parens(child)
	}
	return child
}
