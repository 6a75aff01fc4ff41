package skill

import "errors"

var ErrInvalidTier = errors.New("invalid skill tier")

// Tier is an ordered competence bucket, A best to F worst. There is no E
// tier; the scale runs A, B, C, D, F like academic grades.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
	TierF Tier = "F"
)

func NewTier(value string) (Tier, error) {
	t := Tier(value)
	if !t.IsValid() {
		return "", ErrInvalidTier
	}
	return t, nil
}

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	_, ok := compatible[t]
	return ok
}

// The adjacency table is a hand-enumerated fixture of the domain, not a
// derived ±1 window. Keep it literal.
var compatible = map[Tier][]Tier{
	TierA: {TierA, TierB},
	TierB: {TierA, TierB, TierC},
	TierC: {TierB, TierC, TierD},
	TierD: {TierC, TierD, TierF},
	TierF: {TierD, TierF},
}

// CanPlay reports whether a player of tier t may create or join a booking
// that requires the given tier.
func (t Tier) CanPlay(required Tier) bool {
	for _, allowed := range compatible[t] {
		if allowed == required {
			return true
		}
	}
	return false
}

// CompatibleWith lists the tiers a player of tier t may play against.
func (t Tier) CompatibleWith() []Tier {
	allowed := compatible[t]
	out := make([]Tier, len(allowed))
	copy(out, allowed)
	return out
}
