package spawn

import "unitsim/internal/domain/unit"

type Request struct {
	UnitID       string
	Name         string
	X, Y, Z      int
	Weight       int
	Strength     int
	Agility      int
	Toughness    int
	AutoBehavior bool
}

type Response struct {
	UnitID string        `json:"unit_id"`
	State  unit.Snapshot `json:"state"`
}
