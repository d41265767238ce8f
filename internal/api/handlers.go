package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/piwi3910/RoomLayout/internal/importer"
	"github.com/piwi3910/RoomLayout/internal/logging"
	"github.com/piwi3910/RoomLayout/internal/model"
	"github.com/piwi3910/RoomLayout/internal/validation"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// legacyResponse is the response of GET /predict_placement/. Positions are
// [kind, x, y, width, height] tuples and obstacles [x, y] pairs.
type legacyResponse struct {
	RoomWidth            int             `json:"room_width"`
	RoomHeight           int             `json:"room_height"`
	FurnitureConstraints []string        `json:"furniture_constraints"`
	Obstacles            [][]float64     `json:"obstacles"`
	PredictedPositions   [][]interface{} `json:"predicted_positions"`
	Warnings             []string        `json:"warnings,omitempty"`
}

func (s *Server) handlePredictPlacement(w http.ResponseWriter, r *http.Request) {
	q := legacyQuery(r.URL.RawQuery)

	width, err := positiveInt(q.Get("room_width"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "room_width "+err.Error())
		return
	}
	height, err := positiveInt(q.Get("room_height"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "room_height "+err.Error())
		return
	}

	furniture, warnings := importer.ParseFurniture(q.Get("furniture_constraints"), s.optimizer.Catalog())
	obstacles, obstacleWarnings := importer.ParseObstacles(q.Get("obstacles"))
	warnings = append(warnings, obstacleWarnings...)

	req := model.PlacementRequest{
		Room:      model.Room{Width: float64(width), Height: float64(height)},
		Furniture: furniture,
		Obstacles: obstacles,
	}
	res, err := s.optimizer.Optimize(r.Context(), req)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}

	resp := legacyResponse{
		RoomWidth:            width,
		RoomHeight:           height,
		FurnitureConstraints: res.Furniture,
		Obstacles:            make([][]float64, 0, len(res.Obstacles)),
		PredictedPositions:   make([][]interface{}, 0, len(res.Placements)),
		Warnings:             warnings,
	}
	for _, o := range res.Obstacles {
		resp.Obstacles = append(resp.Obstacles, []float64{o.X, o.Y})
	}
	for _, p := range res.Placements {
		resp.PredictedPositions = append(resp.PredictedPositions, []interface{}{p.Kind, p.X, p.Y, p.Width, p.Height})
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// legacyQuery parses a query string splitting only on '&'. Legacy clients
// send obstacles as x,y;x,y unescaped, and url.ParseQuery drops any pair
// containing a raw semicolon.
func legacyQuery(raw string) url.Values {
	q := url.Values{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			continue
		}
		q.Add(k, v)
	}
	return q
}

func positiveInt(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("is required")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("must be an integer, got %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", v)
	}
	return v, nil
}

type catalogResponse struct {
	Furniture []model.FurnitureKind `json:"furniture"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, catalogResponse{Furniture: s.optimizer.Catalog().Kinds()})
}

type roomBody struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

type layoutRequest struct {
	Room      roomBody        `json:"room"`
	Furniture []string        `json:"furniture"`
	Obstacles []model.Point2D `json:"obstacles"`
	Seed      *int64          `json:"seed,omitempty"`
	Strategy  string          `json:"strategy,omitempty" validate:"omitempty,oneof=anchor zone uniform"`
	Policy    string          `json:"policy,omitempty" validate:"omitempty,oneof=skip fail-fast"`
}

type layoutResponse struct {
	model.PlacementResult
	Coverage float64 `json:"coverage"`
	Complete bool    `json:"complete"`
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	var body layoutRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validation.ValidateStruct(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	opt := s.optimizer
	if body.Strategy != "" || body.Policy != "" {
		settings := opt.Settings
		if body.Strategy != "" {
			settings = settings.WithStrategy(model.Strategy(body.Strategy))
		}
		if body.Policy != "" {
			settings.Policy = model.ExhaustionPolicy(body.Policy)
		}
		opt = opt.WithSettings(settings)
	}

	req := model.PlacementRequest{
		Room:      model.Room{Width: body.Room.Width, Height: body.Room.Height},
		Furniture: body.Furniture,
		Obstacles: body.Obstacles,
		Seed:      body.Seed,
	}
	res, err := opt.Optimize(r.Context(), req)
	if err != nil {
		writeEngineError(w, r, err)
		return
	}
	res.ID = model.NewResultID()

	logging.Ctx(r.Context()).Debug().
		Str("layout", res.ID).
		Int("placed", len(res.Placements)).
		Msg("layout created")

	writeJSON(w, r, http.StatusCreated, layoutResponse{
		PlacementResult: res,
		Coverage:        model.RoundTo(res.Coverage(), 2),
		Complete:        res.Complete(),
	})
}

type capacityRequest struct {
	Room      roomBody `json:"room"`
	Furniture []string `json:"furniture"`
	Fraction  float64  `json:"fraction,omitempty" validate:"omitempty,gt=0,lte=1"`
}

type capacityResponse struct {
	model.CapacityEstimate
	Fits    bool     `json:"fits"`
	Ignored []string `json:"ignored,omitempty"`
}

func (s *Server) handleCapacity(w http.ResponseWriter, r *http.Request) {
	var body capacityRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validation.ValidateStruct(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	fraction := body.Fraction
	if fraction == 0 {
		fraction = s.optimizer.Settings.AreaGateFraction
	}
	kinds, unknown := s.optimizer.Catalog().Resolve(body.Furniture)
	est := model.CalculateCapacity(model.Room{Width: body.Room.Width, Height: body.Room.Height}, kinds, fraction)

	writeJSON(w, r, http.StatusOK, capacityResponse{CapacityEstimate: est, Fits: est.Fits(), Ignored: unknown})
}
