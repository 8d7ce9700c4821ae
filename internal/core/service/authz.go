package service

import "github.com/Bilalabbasid/CRM-sub000/internal/core/domain"

// Decision is the outcome of an authorization check on a protected resource.
type Decision int

const (
	// DecisionPending means the session has not settled yet; render nothing
	// and re-evaluate once it has. Never a terminal answer.
	DecisionPending Decision = iota
	// DecisionRedirectLogin means no identity is present; the attempted
	// destination is discarded.
	DecisionRedirectLogin
	// DecisionDenied means the identity is valid but its role is not in the
	// resource's allowed set. The session is left untouched.
	DecisionDenied
	DecisionGranted
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionDenied:
		return "denied"
	default:
		return "granted"
	}
}

// Evaluate is the authorization gate: a pure decision over a session
// snapshot and the roles a resource requires. An empty required set admits
// any authenticated identity. Callers evaluate per resource, per render —
// the result is never cached, so a session change re-decides everything.
func Evaluate(snap Snapshot, required []domain.Role) Decision {
	switch {
	case snap.Phase == PhaseBootstrapping:
		return DecisionPending
	case snap.Phase != PhaseAuthenticated || snap.Identity == nil:
		return DecisionRedirectLogin
	case len(required) == 0:
		return DecisionGranted
	case snap.Identity.Role.Member(required):
		return DecisionGranted
	default:
		return DecisionDenied
	}
}

// Evaluate runs the gate against the session's current state.
func (s *Session) Evaluate(required ...domain.Role) Decision {
	return Evaluate(s.Snapshot(), required)
}
