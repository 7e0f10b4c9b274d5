package replay

import "unitsim/internal/domain/unit"

type Request struct {
	UnitID       string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

// LatestState is the unit state reconstructed from the event trail. It
// only carries the fields the trail records.
type LatestState struct {
	UnitID        string  `json:"unit_id"`
	Activity      string  `json:"activity"`
	Health        float64 `json:"health"`
	Stamina       float64 `json:"stamina"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Z             float64 `json:"z"`
	Incapacitated bool    `json:"incapacitated"`
}

type Response struct {
	Events      []unit.DomainEvent `json:"events"`
	LatestState LatestState        `json:"latest_state"`
}
