package command

import "unitsim/internal/domain/unit"

type Command struct {
	Type     string  `json:"type"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Z        int     `json:"z"`
	DX       int     `json:"dx"`
	DY       int     `json:"dy"`
	DZ       int     `json:"dz"`
	TargetID string  `json:"target_id"`
	DT       float64 `json:"dt"`
}

type Request struct {
	UnitID         string
	IdempotencyKey string
	Command        Command
}

type Response struct {
	UpdatedState unit.Snapshot      `json:"updated_state"`
	Events       []unit.DomainEvent `json:"events"`
	ResultCode   unit.ResultCode    `json:"result_code"`
}
