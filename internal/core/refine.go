package core

import (
	"github.com/LiuShellway/rcf/internal/checkpoint"
	"github.com/LiuShellway/rcf/internal/interval"
)

// maxRefineSteps bounds how many times RefineInterval will ask a
// transcendental's Refiner for a narrower interval before giving up. The
// bundled pi/e refiners converge in well under this; it exists to turn a
// misbehaving custom Refiner into an error instead of a hang.
const maxRefineSteps = 4096

// EvalIntervalAt evaluates a polynomial at x by Horner's method using
// exact interval addition and multiplication, taking each coefficient's
// own current Interval (a point interval for a rational coefficient); this
// is the interval counterpart of EvalAt.
func EvalIntervalAt(p *Polynomial, x interval.Interval) interval.Interval {
	acc := interval.FromInt64(0)
	for i := p.Degree(); i >= 0; i-- {
		acc = acc.Mul(x)
		if c := p.Coeffs[i]; c != nil {
			acc = acc.Add(c.Interval)
		}
	}
	return acc
}

// updateRFInterval recomputes v.Interval for a rational-function value
// from its anchor's current interval. prec controls the outward rounding
// applied by the division of the numerator's by the denominator's
// enclosure (ignored when Den is nil, since dividing by 1 is exact).
func updateRFInterval(v *Value, prec uint) error {
	if v.Rational {
		v.Interval = interval.Point(v.Rat)
		return nil
	}
	numI := EvalIntervalAt(v.Num, v.Anchor.Interval)
	if v.Den == nil {
		v.Interval = numI
		return nil
	}
	denI := EvalIntervalAt(v.Den, v.Anchor.Interval)
	if denI.ContainsZero() {
		// The denominator's enclosure hasn't yet been refined tightly
		// enough to exclude zero; leave the value's interval as the full
		// line, signaling "needs more refinement" to callers.
		v.Interval = interval.Full()
		return nil
	}
	v.Interval = numI.Div(denI, prec)
	return nil
}

// refineTranscendental asks ext's Refiner for an interval of width
// <= 2^-k and installs it if its Magnitude is no larger than that of the
// interval already known; whether the two intervals overlap is not
// checked.
func refineTranscendental(ext *Extension, k uint) error {
	if next := ext.Refine(k); next.Magnitude() <= ext.Interval.Magnitude() {
		ext.Interval = next
	}
	ext.refineStep = k
	return nil
}

// RefineInterval narrows v's interval until its Magnitude is <= target,
// or returns an error (cancellation, a stalled transcendental refiner, or
// the algebraic case, which is not implemented). Rational values are
// already exact and return immediately.
func RefineInterval(v *Value, target int, prec uint, tok *checkpoint.Token) error {
	if v.Rational {
		return nil
	}
	if err := updateRFInterval(v, prec); err != nil {
		return err
	}
	switch v.Anchor.Kind {
	case Infinitesimal:
		// The enclosure (0, 2^-n) fixed at construction is as tight as
		// this package gets for a bare infinitesimal; sign questions for
		// values that still straddle zero after evaluating at it are
		// resolved symbolically, not by further interval refinement (see
		// sign.go, determineInfinitesimalSign).
		return nil
	case Algebraic:
		return ErrAlgebraicUnsupported
	}
	k := v.Anchor.refineStep
	for step := 0; v.Interval.Magnitude() > target; step++ {
		if tok != nil {
			if err := tok.Check(); err != nil {
				return err
			}
		}
		if step >= maxRefineSteps {
			return ErrRefinementStalled
		}
		prevMag := v.Interval.Magnitude()
		k++
		if err := refineTranscendental(v.Anchor, k); err != nil {
			return err
		}
		if err := updateRFInterval(v, prec); err != nil {
			return err
		}
		if v.Interval.Magnitude() >= prevMag && prevMag != interval.MagnitudeInfinite {
			// no improvement this round; allow a handful of retries at
			// higher k before declaring the refiner stalled, since some
			// refiners need several doublings to make visible progress
			// on a value far from its anchor (e.g. pi/1000000).
			if step > 64 {
				return ErrRefinementStalled
			}
		}
	}
	return nil
}

// saveCtx is the scoped precision save/restore context: every public
// Manager operation opens one, lets arithmetic force child values to
// refine below the manager's minimum magnitude as needed, and restores
// each touched value's prior interval when the operation returns. This
// mirrors save_interval_ctx in the source engine.
type saveCtx struct {
	saved []*Value
}

func newSaveCtx() *saveCtx { return &saveCtx{} }

// touch records that v's interval may be overwritten, saving its current
// interval the first time v is seen in this context.
func (c *saveCtx) touch(v *Value) {
	if v == nil || v.saved != nil {
		return
	}
	prior := v.Interval.Clone()
	v.saved = &prior
	c.saved = append(c.saved, v)
}

// close restores every touched value's interval to what it was when
// first touched, and clears the saved markers.
func (c *saveCtx) close() {
	for _, v := range c.saved {
		if v.saved != nil {
			v.Interval = *v.saved
			v.saved = nil
		}
	}
	c.saved = nil
}

// ensureMagnitude refines v (recording it in ctx first) until its
// interval's Magnitude is <= target.
func (c *saveCtx) ensureMagnitude(v *Value, target int, prec uint, tok *checkpoint.Token) error {
	if v.Rational {
		return nil
	}
	c.touch(v)
	return RefineInterval(v, target, prec, tok)
}
