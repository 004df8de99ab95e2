// internal/app/store/members/live.go
package members

import (
	"context"

	"github.com/dalemusser/whopinsights/internal/app/system/timeouts"
	"github.com/dalemusser/whopinsights/internal/domain/models"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Live reads members from the membership platform.
type Live struct {
	lister Lister
}

// NewLive wraps a platform lister as a Source.
func NewLive(l Lister) *Live {
	return &Live{lister: l}
}

// FetchAll lists every member. An empty list is reported as ErrEmptyResult.
func (s *Live) FetchAll(ctx context.Context) ([]models.Member, error) {
	ctx, span := tracer.Start(ctx, "members.Live.FetchAll")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	list, err := s.lister.ListMembers(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list members failed")
		return nil, err
	}
	if len(list) == 0 {
		span.SetStatus(codes.Error, "empty result")
		return nil, ErrEmptyResult
	}

	span.SetAttributes(attribute.Int("members.count", len(list)))
	return list, nil
}
