package checkout

import (
	"fmt"
	"strings"

	"branchout/internal/models"
)

// Client is the slice of the git adapter the resolver needs.
type Client interface {
	CheckoutLocal(name string) error
	CheckoutNewTracking(local, remoteRef string) error
	FindLocalTracking(remoteRef string) ([]string, error)
}

// Outcome describes a completed checkout.
type Outcome struct {
	Branch  string // the local branch now checked out
	Created bool   // a new tracking branch was created
}

// AmbiguousTrackingError reports that more than one local branch
// tracks the selected remote branch. The choice is surfaced to the
// user, never guessed.
type AmbiguousTrackingError struct {
	RemoteRef string
	Locals    []string
}

func (e *AmbiguousTrackingError) Error() string {
	return fmt.Sprintf("multiple local branches track %s: %s",
		e.RemoteRef, strings.Join(e.Locals, ", "))
}

// Resolve turns the confirmed selection into the right checkout call.
// Local branches are checked out directly. A remote branch reuses its
// existing tracking branch when there is exactly one, and otherwise
// becomes a new local branch with the same short name tracking it.
// Failures are terminal; nothing is retried.
func Resolve(c Client, b models.Branch) (Outcome, error) {
	if b.Kind == models.KindLocal {
		if err := c.CheckoutLocal(b.Name); err != nil {
			return Outcome{}, err
		}
		return Outcome{Branch: b.Name}, nil
	}

	locals, err := c.FindLocalTracking(b.Ref())
	if err != nil {
		return Outcome{}, err
	}

	switch len(locals) {
	case 0:
		if err := c.CheckoutNewTracking(b.Name, b.Ref()); err != nil {
			return Outcome{}, err
		}
		return Outcome{Branch: b.Name, Created: true}, nil
	case 1:
		if err := c.CheckoutLocal(locals[0]); err != nil {
			return Outcome{}, err
		}
		return Outcome{Branch: locals[0]}, nil
	default:
		return Outcome{}, &AmbiguousTrackingError{RemoteRef: b.Ref(), Locals: locals}
	}
}
