// internal/app/store/members/source.go
package members

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dalemusser/whopinsights/internal/app/system/clock"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("github.com/dalemusser/whopinsights/internal/app/store/members")

// Source supplies the full member list, or fails. Implementations never
// return a partial list.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Member, error)
}

// ErrEmptyResult is returned when the live source answers with no members.
var ErrEmptyResult = errors.New("member source returned no members")

// Mode selects where member records come from.
type Mode string

const (
	// ModeAuto picks live when an API key is configured, mock otherwise.
	ModeAuto Mode = "auto"
	// ModeLive reads from the membership platform, with mock fallback.
	ModeLive Mode = "live"
	// ModeMock always serves the synthetic member list.
	ModeMock Mode = "mock"
)

// ParseMode parses a member_source config value.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModeLive, ModeMock:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return "", fmt.Errorf("unknown member source %q (want auto, live or mock)", s)
	}
}

// Resolve turns ModeAuto into a concrete mode based on whether an API key is
// available. Other modes are returned unchanged.
func (m Mode) Resolve(hasAPIKey bool) Mode {
	if m != ModeAuto {
		return m
	}
	if hasAPIKey {
		return ModeLive
	}
	return ModeMock
}

// Lister is the part of the platform client the live source needs.
type Lister interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
}

// New builds the source for a resolved mode. Live mode wraps the platform
// lister with the mock fallback; mock mode serves the synthetic list only.
func New(mode Mode, lister Lister, c clock.Clock, logger *zap.Logger) Source {
	mock := NewMock(c)
	if mode == ModeLive && lister != nil {
		return NewFallback(NewLive(lister), mock, logger)
	}
	logger.Info("using mock member data", zap.String("member_source", string(mode)))
	return mock
}
