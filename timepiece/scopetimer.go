package timepiece

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

// ScopeTimer measures how long enter/exit brackets take and arranges
// measurements in a named tree. Each node owns one bounded interval history;
// reusing a node across iterations accumulates one sample per bracket.
// Children are created lazily via Child and cached by name, so the same
// subtree can be reused inside loops:
//
//	root, _ := timepiece.NewScopeTimer("root", 10)
//	for range work {
//		task, _ := root.Child("task")
//		task.Measure(doTask)
//	}
//	fmt.Println(root)
//
// The parent link is a plain back-reference for lookup; ownership runs
// strictly from the root down through the children maps.
type ScopeTimer struct {
	*IntervalHistory

	name     string
	clk      clock.Clock
	strict   bool
	parent   *ScopeTimer
	children map[string]*ScopeTimer
	order    []string
	start    time.Time
	active   bool
}

// NewScopeTimer creates a root timer whose history retains up to capacity
// intervals. Children inherit the root's clock and re-entry mode.
func NewScopeTimer(name string, capacity int, opts ...Option) (*ScopeTimer, error) {
	s, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	return newScopeTimer(name, capacity, s)
}

func newScopeTimer(name string, capacity int, s settings) (*ScopeTimer, error) {
	if name == "" {
		return nil, fmt.Errorf("scope timer name must not be empty")
	}
	history, err := NewIntervalHistory(capacity)
	if err != nil {
		return nil, err
	}
	return &ScopeTimer{
		IntervalHistory: history,
		name:            name,
		clk:             s.clk,
		strict:          s.strict,
		children:        make(map[string]*ScopeTimer),
	}, nil
}

// Name returns the timer's own name, unique among its siblings.
func (st *ScopeTimer) Name() string {
	return st.name
}

// Parent returns the owning parent, or nil for the root.
func (st *ScopeTimer) Parent() *ScopeTimer {
	return st.parent
}

// Child returns the existing child with the given name, creating it with
// this node's history capacity when it does not exist yet.
func (st *ScopeTimer) Child(name string) (*ScopeTimer, error) {
	return st.ChildWithCapacity(name, st.Capacity())
}

// ChildWithCapacity is Child with an explicit history capacity for a newly
// created node. The capacity of an existing child is left unchanged.
func (st *ScopeTimer) ChildWithCapacity(name string, capacity int) (*ScopeTimer, error) {
	if child, ok := st.children[name]; ok {
		return child, nil
	}
	child, err := newScopeTimer(name, capacity, settings{clk: st.clk, strict: st.strict})
	if err != nil {
		return nil, err
	}
	child.parent = st
	st.children[name] = child
	st.order = append(st.order, name)
	return child, nil
}

// Enter opens a measurement bracket and returns the timer itself, so a
// bracket pairs naturally with defer:
//
//	defer st.Enter().Exit()
//
// Entering an already active timer overwrites the pending start time, losing
// the earlier bracket; with WithStrictReentry it panics instead.
func (st *ScopeTimer) Enter() *ScopeTimer {
	if st.active && st.strict {
		panic("timepiece: scope timer " + st.QualifiedName() + " entered twice without exit")
	}
	st.start = st.clk.Now()
	st.active = true
	return st
}

// Exit closes the bracket opened by Enter and appends the elapsed time to
// the history. Calling Exit without a matching Enter is a caller error with
// undefined results.
func (st *ScopeTimer) Exit() {
	st.Append(st.clk.Now().Sub(st.start).Seconds())
	st.start = time.Time{}
	st.active = false
}

// Measure runs fn inside one bracket, recording exactly one sample even
// when fn panics.
func (st *ScopeTimer) Measure(fn func()) {
	defer st.Enter().Exit()
	fn()
}

// Active reports whether a bracket is currently open on this node.
func (st *ScopeTimer) Active() bool {
	return st.active
}

// Ancestors yields the chain of parents from the immediate parent up to the
// root. The sequence is empty for the root itself.
func (st *ScopeTimer) Ancestors() iter.Seq[*ScopeTimer] {
	return func(yield func(*ScopeTimer) bool) {
		for cur := st.parent; cur != nil; cur = cur.parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// Depth returns the number of ancestors; the root has depth 0.
func (st *ScopeTimer) Depth() int {
	n := 0
	for range st.Ancestors() {
		n++
	}
	return n
}

// QualifiedName returns the dot-joined path of names from the root to this
// node, for example "root.task1.subtask1_1".
func (st *ScopeTimer) QualifiedName() string {
	names := []string{st.name}
	for a := range st.Ancestors() {
		names = append(names, a.name)
	}
	slices.Reverse(names)
	return strings.Join(names, ".")
}

// Walk visits this node and all descendants in depth-first pre-order,
// following the order in which children were created.
func (st *ScopeTimer) Walk(fn func(*ScopeTimer)) {
	fn(st)
	for _, name := range st.order {
		st.children[name].Walk(fn)
	}
}

// String renders the timer tree. Each node lists its name, up to five
// recorded intervals, min/mean/max, and a children block; nodes with an
// empty history show only their name and children. Nested nodes are placed
// on their own line, indented four spaces per depth level:
//
//	<ScopeTimer name=root intervals=[0.9222] min=0.9222 mean=0.9222 max=0.9222 children=[
//	    <ScopeTimer name=task1 intervals=[0.7520] min=0.7520 mean=0.7520 max=0.7520>,
//	    <ScopeTimer name=task2 intervals=[0.1702] min=0.1702 mean=0.1702 max=0.1702>
//	]>
//
// Rendering is a pure function of current state.
func (st *ScopeTimer) String() string {
	var b strings.Builder
	st.render(&b)
	return b.String()
}

// render appends this node's rendering to b, recursing over the children.
func (st *ScopeTimer) render(b *strings.Builder) {
	indent := strings.Repeat("    ", st.Depth())
	if st.parent != nil {
		b.WriteString("\n")
		b.WriteString(indent)
	}
	props := append([]string{"name=" + st.name}, st.statProps()...)
	if len(st.order) > 0 {
		var cb strings.Builder
		for i, name := range st.order {
			if i > 0 {
				cb.WriteString(", ")
			}
			st.children[name].render(&cb)
		}
		props = append(props, "children=["+cb.String()+"\n"+indent+"]")
	}
	b.WriteString("<ScopeTimer ")
	b.WriteString(strings.Join(props, " "))
	b.WriteString(">")
}
