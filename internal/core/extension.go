package core

import (
	"fmt"
	"math/big"

	"github.com/LiuShellway/rcf/internal/interval"
)

// Kind identifies which of the three field-extension variants an Extension
// is. Extensions are totally ordered first by Kind, then by Idx.
type Kind uint8

const (
	Transcendental Kind = iota
	Infinitesimal
	Algebraic
)

func (k Kind) String() string {
	switch k {
	case Transcendental:
		return "transcendental"
	case Infinitesimal:
		return "infinitesimal"
	case Algebraic:
		return "algebraic"
	default:
		return "unknown"
	}
}

// Refiner computes a rational interval of width <= 2^-k around a
// transcendental's true value, for increasing k. This is the external
// "rational-interval kernel" collaborator described in the specification;
// PiRefiner and ERefiner (pi_e.go) are the two bundled implementations.
type Refiner func(k uint) interval.Interval

// Extension is one slot in the rank-ordered extension registry: a
// transcendental, an infinitesimal, or an algebraic number, distinguished
// by Kind. Only the fields relevant to Kind are meaningful; this mirrors
// the tagged-union design note in the specification (a single struct with
// kind-gated fields stands in for the subtype hierarchy of the source
// engine).
type Extension struct {
	Kind Kind
	Idx  int
	Name string

	// Interval is the extension's own current enclosure: refined in place
	// for Transcendental (by repeated calls to Refine), fixed at
	// construction for Infinitesimal, and derived from the isolating
	// interval for Algebraic.
	Interval interval.Interval

	// Transcendental-only.
	Refine     Refiner
	refineStep uint

	// Algebraic-only: scaffolded, see Manager.IsolateRoots.
	DefiningPoly *Polynomial
	SignTable    []SignTableEntry
	IsReal       bool
}

// SignTableEntry witnesses the sign of a polynomial (over prior extensions)
// at the root isolated by an Algebraic extension's defining polynomial and
// isolating interval.
type SignTableEntry struct {
	Poly *Polynomial
	Sign int
}

// Less implements the rank order (Kind, Idx) lexicographically.
func (e *Extension) Less(other *Extension) bool {
	if e.Kind != other.Kind {
		return e.Kind < other.Kind
	}
	return e.Idx < other.Idx
}

// Equal reports whether e and other occupy the same rank slot.
func (e *Extension) Equal(other *Extension) bool {
	return e == other || (e.Kind == other.Kind && e.Idx == other.Idx)
}

func (e *Extension) String() string {
	switch e.Kind {
	case Infinitesimal:
		if e.Name != "" {
			return e.Name
		}
		return fmt.Sprintf("eps!%d", e.Idx)
	case Algebraic:
		return fmt.Sprintf("r!%d", e.Idx)
	default:
		return e.Name
	}
}

// Registry holds the three per-kind vectors of extensions, indexed by Idx.
// Slots are never reused within a Registry's lifetime: Go's garbage
// collector reclaims an Extension once nothing references it, which stands
// in for the explicit reference-counted slot compaction of the source
// engine (see DESIGN.md for the rationale).
type Registry struct {
	slots [3][]*Extension
}

// NewTranscendental allocates and registers a new Transcendental extension
// with the given name and refinement procedure.
func (r *Registry) NewTranscendental(name string, refine Refiner) *Extension {
	ext := &Extension{
		Kind:     Transcendental,
		Idx:      len(r.slots[Transcendental]),
		Name:     name,
		Refine:   refine,
		Interval: interval.Full(),
	}
	r.slots[Transcendental] = append(r.slots[Transcendental], ext)
	return ext
}

// NewInfinitesimal allocates and registers a new Infinitesimal extension
// with initial enclosure (0, 2^-n).
func (r *Registry) NewInfinitesimal(name string, n uint) *Extension {
	idx := len(r.slots[Infinitesimal])
	if name == "" {
		name = fmt.Sprintf("eps!%d", idx)
	}
	ext := &Extension{
		Kind: Infinitesimal,
		Idx:  idx,
		Name: name,
		Interval: interval.Interval{
			Lo:     ratZero(),
			Hi:     new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), n)),
			LoOpen: true,
			HiOpen: true,
		},
	}
	r.slots[Infinitesimal] = append(r.slots[Infinitesimal], ext)
	return ext
}

// NewAlgebraic allocates and registers a new Algebraic extension slot;
// callers fill in DefiningPoly/SignTable/IsReal once root isolation is
// available (see Manager.IsolateRoots).
func (r *Registry) NewAlgebraic() *Extension {
	ext := &Extension{Kind: Algebraic, Idx: len(r.slots[Algebraic])}
	r.slots[Algebraic] = append(r.slots[Algebraic], ext)
	return ext
}
