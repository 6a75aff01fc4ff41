package repository

import (
	"padelbook/internal/domain/booking"
	"padelbook/internal/domain/skill"
)

func skillTier(s string) skill.Tier {
	return skill.Tier(s)
}

func tierPtr(t *skill.Tier) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func modePtr(m *booking.Mode) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

func statusPtr(st *booking.Status) *string {
	if st == nil {
		return nil
	}
	s := st.String()
	return &s
}
