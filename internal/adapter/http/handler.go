package httpadapter

import (
	"context"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"guildhall/internal/app/gates"
	"guildhall/internal/app/ports"
)

const defaultUnlockListLimit = 50

type Handler struct {
	GatesUC gates.QueryUseCase
	Runner  *gates.Runner
	Unlocks ports.UnlockEventRepository
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.GET("/gates", h.listGates)
	api.GET("/gates/:id", h.gateStatus)
	api.GET("/gates/:id/progress", h.gateProgress)

	ops := api.Group("/ops")
	ops.POST("/tick", h.tick)
	ops.GET("/unlocks", h.unlocks)
}

func (h Handler) listGates(c context.Context, ctx *app.RequestContext) {
	resp, err := h.GatesUC.List(c, gates.ListRequest{GateType: string(ctx.Query("type"))})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) gateStatus(c context.Context, ctx *app.RequestContext) {
	resp, err := h.GatesUC.Status(c, gates.StatusRequest{GateID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) gateProgress(c context.Context, ctx *app.RequestContext) {
	resp, err := h.GatesUC.Progress(c, gates.ProgressRequest{GateID: ctx.Param("id")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type tickResponse struct {
	Unlocked []ports.GateUnlockedEvent `json:"unlocked"`
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	events, err := h.Runner.RunOnce(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, tickResponse{Unlocked: events})
}

type unlocksResponse struct {
	Events []ports.GateUnlockedEvent `json:"events"`
}

func (h Handler) unlocks(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	if limit <= 0 {
		limit = defaultUnlockListLimit
	}
	events, err := h.Unlocks.ListRecent(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, unlocksResponse{Events: events})
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, gates.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, errorBody{Error: code, Message: message})
}
