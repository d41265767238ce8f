// Package predictor supplies the anchor point the placement engine clusters
// furniture around. A predictor is consulted exactly once per request.
package predictor

import (
	"context"
	"errors"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// ErrUnavailable is returned when no prediction artifact or service is
// configured.
var ErrUnavailable = errors.New("predictor unavailable")

// Predictor maps room dimensions to an anchor point.
type Predictor interface {
	PredictAnchor(ctx context.Context, width, height float64) (model.Point2D, error)
}

// Func adapts a plain function to the Predictor interface.
type Func func(ctx context.Context, width, height float64) (model.Point2D, error)

// PredictAnchor implements Predictor.
func (f Func) PredictAnchor(ctx context.Context, width, height float64) (model.Point2D, error) {
	return f(ctx, width, height)
}

// Fixed returns a predictor that always answers with p.
func Fixed(p model.Point2D) Func {
	return func(context.Context, float64, float64) (model.Point2D, error) {
		return p, nil
	}
}

// Failing returns a predictor that always fails with err.
func Failing(err error) Func {
	return func(context.Context, float64, float64) (model.Point2D, error) {
		return model.Point2D{}, err
	}
}
