// internal/app/store/members/fallback.go
package members

import (
	"context"

	"github.com/dalemusser/whopinsights/internal/domain/models"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Fallback serves the primary source and substitutes the secondary list in
// full whenever the primary fails or comes back empty. No error from the
// primary reaches the caller.
type Fallback struct {
	Primary   Source
	Secondary Source
	Log       *zap.Logger
}

// NewFallback wires a primary source to its fallback.
func NewFallback(primary, secondary Source, logger *zap.Logger) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary, Log: logger}
}

func (f *Fallback) FetchAll(ctx context.Context) ([]models.Member, error) {
	ctx, span := tracer.Start(ctx, "members.Fallback.FetchAll")
	defer span.End()

	list, err := f.Primary.FetchAll(ctx)
	if err == nil && len(list) > 0 {
		span.SetAttributes(attribute.Bool("members.fallback", false))
		return list, nil
	}
	if err == nil {
		err = ErrEmptyResult
	}

	f.Log.Warn("member source unavailable, using mock data", zap.Error(err))
	span.SetAttributes(attribute.Bool("members.fallback", true))
	return f.Secondary.FetchAll(ctx)
}
