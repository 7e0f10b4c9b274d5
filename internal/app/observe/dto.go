package observe

import "unitsim/internal/domain/unit"

type Request struct {
	UnitID string
}

type Response struct {
	UnitID    string        `json:"unit_id"`
	State     unit.Snapshot `json:"state"`
	Version   int64         `json:"version"`
	Cell      [3]int        `json:"cell"`
	Sprinting bool          `json:"sprinting"`
	Locked    bool          `json:"locked"`
}
