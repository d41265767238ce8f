package model

// CapacityEstimate holds the results of a furniture area calculation.
type CapacityEstimate struct {
	RoomArea       float64 `json:"room_area"`       // Floor area of the room
	AllowedArea    float64 `json:"allowed_area"`    // Share of the floor furniture may cover
	FurnitureArea  float64 `json:"furniture_area"`  // Sum of requested footprints
	RemainingArea  float64 `json:"remaining_area"`  // AllowedArea minus FurnitureArea, may be negative
	Fraction       float64 `json:"fraction"`        // Allowed share used for AllowedArea
	ItemCount      int     `json:"item_count"`      // Number of requested items
	UtilizationPct float64 `json:"utilization_pct"` // FurnitureArea as a percentage of AllowedArea
}

// Fits reports whether the requested furniture stays within the allowed area.
func (c CapacityEstimate) Fits() bool {
	return c.FurnitureArea <= c.AllowedArea
}

// CalculateCapacity computes how much of the room the given furniture would
// cover against the allowed fraction of floor area.
func CalculateCapacity(room Room, kinds []FurnitureKind, fraction float64) CapacityEstimate {
	var furnitureArea float64
	for _, k := range kinds {
		furnitureArea += k.Area()
	}

	roomArea := room.Area()
	allowed := roomArea * fraction

	est := CapacityEstimate{
		RoomArea:      roomArea,
		AllowedArea:   allowed,
		FurnitureArea: furnitureArea,
		RemainingArea: allowed - furnitureArea,
		Fraction:      fraction,
		ItemCount:     len(kinds),
	}
	if allowed > 0 {
		est.UtilizationPct = furnitureArea / allowed * 100.0
	}
	return est
}
