package admin

import "crypto/subtle"

// Gate decides whether an access code unlocks the admin session.
type Gate interface {
	Check(code string) bool
}

// GateFunc adapts a plain function to a Gate.
type GateFunc func(code string) bool

func (f GateFunc) Check(code string) bool {
	return f(code)
}

// StaticGate accepts exactly one shared secret. Comparison is case-sensitive
// and byte-exact; surrounding whitespace is not trimmed.
type StaticGate struct {
	secret []byte
}

func NewStaticGate(secret string) StaticGate {
	return StaticGate{secret: []byte(secret)}
}

func (g StaticGate) Check(code string) bool {
	if len(g.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(g.secret, []byte(code)) == 1
}
