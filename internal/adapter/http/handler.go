package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"unitsim/internal/app/command"
	"unitsim/internal/app/observe"
	"unitsim/internal/app/ports"
	"unitsim/internal/app/replay"
	"unitsim/internal/app/spawn"
	"unitsim/internal/domain/unit"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	SpawnUC   spawn.UseCase
	ObserveUC observe.UseCase
	CommandUC command.UseCase
	ReplayUC  replay.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	units := s.Group("/api/units")
	units.POST("", h.spawn)
	units.GET("/:unit_id", h.observe)
	units.POST("/:unit_id/commands", h.command)
	units.GET("/:unit_id/events", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type spawnRequest struct {
	UnitID       string `json:"unit_id"`
	Name         string `json:"name"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Z            int    `json:"z"`
	Weight       int    `json:"weight"`
	Strength     int    `json:"strength"`
	Agility      int    `json:"agility"`
	Toughness    int    `json:"toughness"`
	AutoBehavior bool   `json:"auto_behavior"`
}

type commandRequest struct {
	IdempotencyKey string          `json:"idempotency_key"`
	Command        command.Command `json:"command"`
}

func (h Handler) spawn(c context.Context, ctx *app.RequestContext) {
	var body spawnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.SpawnUC.Execute(c, spawn.Request{
		UnitID:       body.UnitID,
		Name:         body.Name,
		X:            body.X,
		Y:            body.Y,
		Z:            body.Z,
		Weight:       body.Weight,
		Strength:     body.Strength,
		Agility:      body.Agility,
		Toughness:    body.Toughness,
		AutoBehavior: body.AutoBehavior,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c, observe.Request{
		UnitID: ctx.Param("unit_id"),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) command(c context.Context, ctx *app.RequestContext) {
	var body commandRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CommandUC.Execute(c, command.Request{
		UnitID:         ctx.Param("unit_id"),
		IdempotencyKey: body.IdempotencyKey,
		Command:        body.Command,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		UnitID:       ctx.Param("unit_id"),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, unit.ErrInvalidPosition):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_position", err.Error())
	case errors.Is(err, unit.ErrInvalidName):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_name", err.Error())
	case errors.Is(err, unit.ErrInvalidOffset):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_offset", err.Error())
	case errors.Is(err, unit.ErrInvalidDelta):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_delta", err.Error())
	case errors.Is(err, command.ErrInvalidParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_command_params", err.Error())
	case errors.Is(err, command.ErrSprintNotAllowed):
		writeErrorBody(ctx, consts.StatusConflict, "sprint_not_allowed", err.Error())
	case errors.Is(err, spawn.ErrInvalidRequest),
		errors.Is(err, command.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
