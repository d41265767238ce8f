package predictor

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/goccy/go-json"

	"github.com/piwi3910/RoomLayout/internal/model"
)

// Coefficients is a linear anchor model:
//
//	x = XWidth*width + XHeight*height + XIntercept
//	y = YWidth*width + YHeight*height + YIntercept
type Coefficients struct {
	XWidth     float64 `json:"x_width" koanf:"x_width"`
	XHeight    float64 `json:"x_height" koanf:"x_height"`
	XIntercept float64 `json:"x_intercept" koanf:"x_intercept"`
	YWidth     float64 `json:"y_width" koanf:"y_width"`
	YHeight    float64 `json:"y_height" koanf:"y_height"`
	YIntercept float64 `json:"y_intercept" koanf:"y_intercept"`
}

// DefaultCoefficients approximates the mean placement of catalog furniture
// dropped uniformly into a room: half the free span along each axis.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		XWidth:     0.5,
		XIntercept: -1.25,
		YHeight:    0.5,
		YIntercept: -1.0,
	}
}

// Linear predicts anchors from a coefficient artifact. The zero value has
// no artifact and fails with ErrUnavailable.
type Linear struct {
	coeff  Coefficients
	loaded bool
}

// NewLinear creates a linear predictor from the given coefficients.
func NewLinear(c Coefficients) *Linear {
	return &Linear{coeff: c, loaded: true}
}

// LoadLinear reads a JSON coefficient artifact from path.
func LoadLinear(path string) (*Linear, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading predictor artifact: %w", err)
	}
	var c Coefficients
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing predictor artifact %s: %w", path, err)
	}
	return NewLinear(c), nil
}

// Coefficients returns the loaded coefficients.
func (l *Linear) Coefficients() Coefficients {
	return l.coeff
}

// PredictAnchor implements Predictor.
func (l *Linear) PredictAnchor(ctx context.Context, width, height float64) (model.Point2D, error) {
	if l == nil || !l.loaded {
		return model.Point2D{}, ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return model.Point2D{}, err
	}
	c := l.coeff
	p := model.Point2D{
		X: c.XWidth*width + c.XHeight*height + c.XIntercept,
		Y: c.YWidth*width + c.YHeight*height + c.YIntercept,
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return model.Point2D{}, fmt.Errorf("linear predictor produced non-finite anchor for %vx%v", width, height)
	}
	return p, nil
}
