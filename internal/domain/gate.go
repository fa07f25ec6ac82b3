package domain

// RootRoute is where unauthenticated viewers are sent.
const RootRoute = "/"

// AccessDecision is the gate's verdict for one render pass.
type AccessDecision struct {
	Allowed  bool
	Redirect string
}

// AccessGate decides whether the directory may be shown at all.
// It holds no session state; callers pass the flag they read for this pass.
type AccessGate struct {
	RedirectTo string
}

func NewAccessGate() AccessGate {
	return AccessGate{RedirectTo: RootRoute}
}

func (g AccessGate) Evaluate(authenticated bool) AccessDecision {
	if authenticated {
		return AccessDecision{Allowed: true}
	}
	to := g.RedirectTo
	if to == "" {
		to = RootRoute
	}
	return AccessDecision{Allowed: false, Redirect: to}
}
