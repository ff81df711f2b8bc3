package streamer

import "testing"

// fakeOp is a minimal prioritized producer for exercising the wrap rules.
type fakeOp struct {
	priority int
	assoc    Assoc
}

func (f fakeOp) Stream(Context) TokenStream { return Tokens("op") }
func (f fakeOp) Priority() int              { return f.priority }
func (f fakeOp) Associativity() Assoc       { return f.assoc }

// alwaysWrap overrides the default decision unconditionally.
type alwaysWrap struct{ fakeOp }

func (alwaysWrap) NeedsWrap(Operand, Side) bool { return true }

func TestDefaultNeedsWrap(t *testing.T) {
	cases := []struct {
		name   string
		child  fakeOp
		parent fakeOp
		side   Side
		want   bool
	}{
		{
			name:   "lower priority wraps",
			child:  fakeOp{priority: 0},
			parent: fakeOp{priority: 1},
			side:   SideLeft,
			want:   true,
		},
		{
			name:   "higher priority never wraps",
			child:  fakeOp{priority: 2},
			parent: fakeOp{priority: 1},
			side:   SideRight,
			want:   false,
		},
		{
			name:   "equal priority left-assoc keeps left",
			child:  fakeOp{priority: 1, assoc: AssocLeft},
			parent: fakeOp{priority: 1, assoc: AssocLeft},
			side:   SideLeft,
			want:   false,
		},
		{
			name:   "equal priority left-assoc wraps right",
			child:  fakeOp{priority: 1, assoc: AssocLeft},
			parent: fakeOp{priority: 1, assoc: AssocLeft},
			side:   SideRight,
			want:   true,
		},
		{
			name:   "equal priority right-assoc wraps left",
			child:  fakeOp{priority: 3, assoc: AssocRight},
			parent: fakeOp{priority: 3, assoc: AssocRight},
			side:   SideLeft,
			want:   true,
		},
		{
			name:   "equal priority right-assoc keeps right",
			child:  fakeOp{priority: 3, assoc: AssocRight},
			parent: fakeOp{priority: 3, assoc: AssocRight},
			side:   SideRight,
			want:   false,
		},
		{
			name:   "equal priority none-assoc always wraps",
			child:  fakeOp{priority: 2, assoc: AssocNone},
			parent: fakeOp{priority: 2, assoc: AssocNone},
			side:   SideNone,
			want:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DefaultNeedsWrap(tc.child, tc.parent, tc.side); got != tc.want {
				t.Fatalf("DefaultNeedsWrap = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNeedsWrap_LeafWithoutPriorityNeverWraps(t *testing.T) {
	parent := fakeOp{priority: 99}
	if NeedsWrap(Literal("x"), parent, SideLeft) {
		t.Fatal("plain leaf should bind maximally")
	}
}

func TestNeedsWrap_DeciderOverrides(t *testing.T) {
	// Higher priority would normally skip wrapping; the override wins.
	child := alwaysWrap{fakeOp{priority: 9}}
	parent := fakeOp{priority: 1}
	if !NeedsWrap(child, parent, SideLeft) {
		t.Fatal("WrapDecider override was ignored")
	}
}

func TestRespectPriority_SubstitutesAtConstruction(t *testing.T) {
	parent := fakeOp{priority: 5}

	kept := RespectPriority(fakeOp{priority: 7}, parent, SideLeft)
	if _, isWrapped := kept.(*Wrapped); isWrapped {
		t.Fatal("tighter-binding child was wrapped")
	}

	wrapped := RespectPriority(fakeOp{priority: 1}, parent, SideLeft)
	if _, isWrapped := wrapped.(*Wrapped); !isWrapped {
		t.Fatalf("looser-binding child was not wrapped: %T", wrapped)
	}
	if got := RenderString(wrapped, nil); got != "(op)" {
		t.Fatalf("wrapped render = %q, want %q", got, "(op)")
	}
}
