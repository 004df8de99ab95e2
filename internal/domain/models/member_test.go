package models

import "testing"

func TestMember_Logins(t *testing.T) {
	var m Member
	if got := m.Logins(); got != 0 {
		t.Errorf("Logins() with no metadata = %d, want 0", got)
	}
	n := 42
	m.Metadata.LoginCount = &n
	if got := m.Logins(); got != 42 {
		t.Errorf("Logins() = %d, want 42", got)
	}
}

func TestMember_LastActiveAt(t *testing.T) {
	m := Member{CreatedAt: 1000}
	if got := m.LastActiveAt(); got != 1000 {
		t.Errorf("LastActiveAt() with no metadata = %d, want created_at 1000", got)
	}

	zero := int64(0)
	m.Metadata.LastActive = &zero
	if got := m.LastActiveAt(); got != 1000 {
		t.Errorf("LastActiveAt() with zero last_active = %d, want created_at 1000", got)
	}

	ts := int64(5000)
	m.Metadata.LastActive = &ts
	if got := m.LastActiveAt(); got != 5000 {
		t.Errorf("LastActiveAt() = %d, want 5000", got)
	}
}

func TestOperator_DisplayName(t *testing.T) {
	tests := []struct {
		op   Operator
		want string
	}{
		{Operator{Name: "Ada", Username: "ada"}, "Ada"},
		{Operator{Username: "ada"}, "@ada"},
		{Operator{}, ""},
	}
	for _, tt := range tests {
		if got := tt.op.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%+v) = %q, want %q", tt.op, got, tt.want)
		}
	}
}
