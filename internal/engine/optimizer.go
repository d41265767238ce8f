package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/piwi3910/RoomLayout/internal/metrics"
	"github.com/piwi3910/RoomLayout/internal/model"
	"github.com/piwi3910/RoomLayout/internal/predictor"
)

// Optimizer places furniture into rooms. It holds only read-only
// configuration, so one Optimizer can serve concurrent requests.
type Optimizer struct {
	Settings model.Settings

	catalog   model.Catalog
	predictor predictor.Predictor
	seed      *int64
	logger    zerolog.Logger
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithSeed fixes the random source used for requests that carry no seed
// of their own.
func WithSeed(seed int64) Option {
	return func(o *Optimizer) {
		o.seed = &seed
	}
}

// WithLogger sets the logger for request outcomes and exhaustion warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Optimizer) {
		o.logger = l
	}
}

// New creates an optimizer. p may be nil, in which case every request fails
// with a predictor error.
func New(settings model.Settings, catalog model.Catalog, p predictor.Predictor, opts ...Option) *Optimizer {
	o := &Optimizer{
		Settings:  settings,
		catalog:   catalog,
		predictor: p,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithSettings returns a copy of the optimizer that uses s. The catalog,
// predictor, seed and logger are shared.
func (o *Optimizer) WithSettings(s model.Settings) *Optimizer {
	c := *o
	c.Settings = s
	return &c
}

// Catalog returns the catalog the optimizer resolves names against.
func (o *Optimizer) Catalog() model.Catalog {
	return o.catalog
}

// Optimize places the requested furniture in request order. Unknown
// furniture names are dropped and reported in the result's Ignored list;
// obstacles with a NaN or infinite coordinate are dropped and counted in
// IgnoredObstacles.
// It fails with a *CapacityError when the area gate trips, a
// *PredictorError when no anchor can be obtained, and an *UnplaceableError
// when an item runs out of attempts under the fail-fast policy. No partial
// result is returned on failure.
func (o *Optimizer) Optimize(ctx context.Context, req model.PlacementRequest) (model.PlacementResult, error) {
	start := time.Now()
	s := o.Settings
	strategy := string(s.Strategy)

	res, err := o.optimize(ctx, req)
	outcome := outcomeOf(res, err)
	metrics.RecordLayout(strategy, outcome, time.Since(start))

	ev := o.logger.Info()
	if err != nil {
		ev = o.logger.Warn().Err(err)
	}
	ev.Str("strategy", strategy).
		Str("policy", string(s.Policy)).
		Float64("room_width", req.Room.Width).
		Float64("room_height", req.Room.Height).
		Int("requested", len(req.Furniture)).
		Int("placed", len(res.Placements)).
		Int("unplaced", len(res.Unplaced)).
		Int("attempts", res.Attempts).
		Str("outcome", outcome).
		Dur("duration", time.Since(start)).
		Msg("placement finished")

	if err != nil {
		return model.PlacementResult{}, err
	}
	return res, nil
}

func (o *Optimizer) optimize(ctx context.Context, req model.PlacementRequest) (model.PlacementResult, error) {
	s := o.Settings
	room := req.Room

	if !room.Valid() {
		return model.PlacementResult{}, fmt.Errorf("%w: %v x %v", ErrInvalidRoom, room.Width, room.Height)
	}
	if err := s.Validate(); err != nil {
		return model.PlacementResult{}, fmt.Errorf("invalid settings: %w", err)
	}

	kinds, unknown := o.catalog.Resolve(req.Furniture)
	if len(unknown) > 0 {
		o.logger.Debug().Strs("names", unknown).Msg("ignoring unknown furniture")
	}

	// Area gate runs before anything is sampled or predicted
	if s.AreaGate {
		est := model.CalculateCapacity(room, kinds, s.AreaGateFraction)
		if !est.Fits() {
			return model.PlacementResult{}, &CapacityError{Estimate: est}
		}
	}

	anchor, err := o.predictAnchor(ctx, room)
	if err != nil {
		return model.PlacementResult{}, err
	}

	var zones []model.Zone
	if s.Strategy == model.StrategyZoned {
		zones = AssignZones(AllocateZones(room, s.ZoneMargin), len(kinds))
	}
	proposer, err := NewProposer(s, room, anchor, zones)
	if err != nil {
		return model.PlacementResult{}, err
	}

	obstacles := make([]model.Point2D, 0, len(req.Obstacles))
	dropped := 0
	for _, ob := range req.Obstacles {
		if !ob.Finite() {
			dropped++
			continue
		}
		obstacles = append(obstacles, ob)
	}
	if dropped > 0 {
		o.logger.Debug().Int("count", dropped).Msg("ignoring non-finite obstacles")
	}

	sampler := NewSampler(o.newRand(req), proposer, room, obstacles, s)

	res := model.PlacementResult{
		Room:       room,
		Furniture:  make([]string, 0, len(kinds)),
		Obstacles:  obstacles,
		Anchor:     anchor,
		Strategy:   s.Strategy,
		Policy:     s.Policy,
		Placements: []model.PlacedItem{},
		Ignored:    unknown,

		IgnoredObstacles: dropped,
	}
	for _, k := range kinds {
		res.Furniture = append(res.Furniture, k.Name)
	}

	defer func() { metrics.RecordRejections(rejectionLabels(sampler.Rejections())) }()

	for i, kind := range kinds {
		item, attempts, ok := sampler.Place(kind, i)
		res.Attempts += attempts
		metrics.RecordItem(attempts, ok)

		if ok {
			res.Placements = append(res.Placements, item)
			continue
		}

		o.logger.Warn().
			Str("kind", kind.Name).
			Int("index", i).
			Int("attempts", attempts).
			Msg("furniture item exhausted its retry budget")

		if s.Policy == model.PolicyFailFast {
			return model.PlacementResult{}, &UnplaceableError{Index: i, Kind: kind.Name, Attempts: attempts}
		}
		res.Unplaced = append(res.Unplaced, model.UnplacedItem{Index: i, Kind: kind.Name, Attempts: attempts})
	}

	return res, nil
}

// predictAnchor makes the single predictor call for a request and rounds
// the anchor to the configured precision.
func (o *Optimizer) predictAnchor(ctx context.Context, room model.Room) (model.Point2D, error) {
	if o.predictor == nil {
		return model.Point2D{}, &PredictorError{Err: predictor.ErrUnavailable}
	}
	anchor, err := o.predictor.PredictAnchor(ctx, room.Width, room.Height)
	if err != nil {
		return model.Point2D{}, &PredictorError{Err: err}
	}
	return model.Point2D{
		X: model.RoundTo(anchor.X, o.Settings.Precision),
		Y: model.RoundTo(anchor.Y, o.Settings.Precision),
	}, nil
}

// newRand picks the random source for one request: the request seed, then
// the optimizer seed, then the clock.
func (o *Optimizer) newRand(req model.PlacementRequest) *rand.Rand {
	var seed int64
	switch {
	case req.Seed != nil:
		seed = *req.Seed
	case o.seed != nil:
		seed = *o.seed
	default:
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func rejectionLabels(in map[Rejection]int) map[string]int {
	out := make(map[string]int, len(in))
	for r, n := range in {
		out[r.String()] = n
	}
	return out
}

func outcomeOf(res model.PlacementResult, err error) string {
	switch {
	case err == nil && len(res.Unplaced) > 0:
		return metrics.OutcomePartial
	case err == nil:
		return metrics.OutcomeComplete
	case errors.Is(err, ErrCapacity):
		return metrics.OutcomeCapacity
	case errors.Is(err, ErrUnplaceable):
		return metrics.OutcomeUnplaceable
	case errors.Is(err, ErrPredictor):
		return metrics.OutcomePredictor
	}
	return metrics.OutcomeInvalid
}
