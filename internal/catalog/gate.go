package catalog

// Gate is the pass-phrase check in front of the catalog: a single static
// secret compared for equality. No hashing, no rate limiting, no session
// expiry; hardening is explicitly out of scope.
type Gate struct {
	secret string
}

// NewGate returns a gate guarding access with the given secret. An empty
// secret leaves the gate open.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Admit reports whether the supplied code opens the gate.
func (g *Gate) Admit(code string) bool {
	return g.secret == "" || code == g.secret
}
