package whop

import (
	"github.com/dalemusser/whopinsights/internal/app/system/htmlsanitize"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"github.com/oapi-codegen/nullable"
)

// memberDTO is a member as returned by the membership platform.
type memberDTO struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Username  string      `json:"username"`
	CreatedAt int64       `json:"created_at"`
	Metadata  metadataDTO `json:"metadata"`
}

// metadataDTO distinguishes absent, null, and present counters.
type metadataDTO struct {
	LoginCount nullable.Nullable[int]   `json:"login_count"`
	LastActive nullable.Nullable[int64] `json:"last_active"`
}

type pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type memberPage struct {
	Data       []memberDTO `json:"data"`
	Pagination *pagination `json:"pagination"`
}

type meDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type accessDTO struct {
	HasAccess   bool   `json:"has_access"`
	AccessLevel string `json:"access_level"`
}

// toModel converts the wire record into the domain type. Display strings are
// stripped of markup; absent or null counters stay nil.
func (d memberDTO) toModel() models.Member {
	name := d.Name
	if name == "" {
		name = d.Username
	}

	m := models.Member{
		ID:        d.ID,
		Email:     htmlsanitize.Plain(d.Email),
		Name:      htmlsanitize.Plain(name),
		CreatedAt: d.CreatedAt,
	}
	if d.Metadata.LoginCount.IsSpecified() && !d.Metadata.LoginCount.IsNull() {
		if v, err := d.Metadata.LoginCount.Get(); err == nil {
			m.Metadata.LoginCount = &v
		}
	}
	if d.Metadata.LastActive.IsSpecified() && !d.Metadata.LastActive.IsNull() {
		if v, err := d.Metadata.LastActive.Get(); err == nil {
			m.Metadata.LastActive = &v
		}
	}
	return m
}

func (d meDTO) toModel() models.Operator {
	return models.Operator{
		ID:       d.ID,
		Username: htmlsanitize.Plain(d.Username),
		Name:     htmlsanitize.Plain(d.Name),
		Email:    htmlsanitize.Plain(d.Email),
	}
}
