package calc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const unboundedLabel = "unbounded"

// Retention hours of footage a card holds; either a finite number of hours
// or unbounded when nothing is being written.
type Retention struct {
	hours     float64
	unbounded bool
}

// Finite returns a finite retention of h hours.
func Finite(h float64) Retention {
	return Retention{hours: h}
}

// Unbounded returns the retention of a card that is never written to.
func Unbounded() Retention {
	return Retention{unbounded: true}
}

// IsUnbounded reports whether r has no finite limit.
func (r Retention) IsUnbounded() bool {
	return r.unbounded
}

// Hours returns the finite hours; ok is false for an unbounded retention.
func (r Retention) Hours() (h float64, ok bool) {
	if r.unbounded {
		return 0, false
	}
	return r.hours, true
}

func (r Retention) String() string {
	if r.unbounded {
		return unboundedLabel
	}
	return strconv.FormatFloat(r.hours, 'f', 1, 64)
}

// MarshalJSON encodes a finite retention as a number and an unbounded one as
// the string "unbounded".
func (r Retention) MarshalJSON() ([]byte, error) {
	if r.unbounded {
		return json.Marshal(unboundedLabel)
	}
	return json.Marshal(r.hours)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (r *Retention) UnmarshalJSON(b []byte) error {
	var label string
	if err := json.Unmarshal(b, &label); err == nil {
		if label != unboundedLabel {
			return fmt.Errorf("retention: unexpected label %q", label)
		}
		*r = Unbounded()
		return nil
	}
	var h float64
	if err := json.Unmarshal(b, &h); err != nil {
		return errors.New("retention: want a number or \"unbounded\"")
	}
	*r = Finite(h)
	return nil
}
