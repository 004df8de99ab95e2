// internal/domain/models/member.go
package models

// Member is a membership record as supplied by the member source.
// It is read-only to this application; nothing here writes it back.
//
// Timestamps are epoch milliseconds, matching the membership platform API.
type Member struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	CreatedAt int64          `json:"created_at"`
	Metadata  MemberMetadata `json:"metadata"`
}

// MemberMetadata carries the optional activity counters for a member.
// Nil means the upstream record did not include the field.
type MemberMetadata struct {
	LoginCount *int   `json:"login_count,omitempty"`
	LastActive *int64 `json:"last_active,omitempty"`
}

// Logins returns metadata.login_count, defaulting to 0 when absent.
func (m Member) Logins() int {
	if m.Metadata.LoginCount == nil {
		return 0
	}
	return *m.Metadata.LoginCount
}

// LastActiveAt returns metadata.last_active, falling back to CreatedAt when
// the field is absent or zero.
func (m Member) LastActiveAt() int64 {
	if m.Metadata.LastActive == nil || *m.Metadata.LastActive == 0 {
		return m.CreatedAt
	}
	return *m.Metadata.LastActive
}
