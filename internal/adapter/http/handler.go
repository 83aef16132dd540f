package httpadapter

import (
	"context"
	"errors"
	"strconv"

	"stratagem/internal/app/ports"
	"stratagem/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Handler exposes the operator surface. It never touches game state
// directly; everything routes through the status usecase.
type Handler struct {
	StatusUC status.UseCase
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	engine := s.Group("/ops/engine")
	engine.POST("/enable", h.enable)
	engine.POST("/disable", h.disable)
	engine.GET("/status", h.engineStatus)
	engine.POST("/cycle", h.forceCycle)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/ops/journal", h.journal)
	s.GET("/healthz", h.health)
}

func (h Handler) enable(c context.Context, ctx *app.RequestContext) {
	h.StatusUC.Enable()
	ctx.JSON(consts.StatusOK, h.StatusUC.Report())
}

func (h Handler) disable(c context.Context, ctx *app.RequestContext) {
	h.StatusUC.Disable()
	ctx.JSON(consts.StatusOK, h.StatusUC.Report())
}

func (h Handler) engineStatus(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.StatusUC.Report())
}

func (h Handler) forceCycle(c context.Context, ctx *app.RequestContext) {
	record, err := h.StatusUC.ForceCycle(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, record)
}

func (h Handler) kpi(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.StatusUC.KPI())
}

func (h Handler) journal(c context.Context, ctx *app.RequestContext) {
	limit, err := parseLimit(ctx)
	if err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
		return
	}
	resp, err := h.StatusUC.RecentDecisions(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) health(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func parseLimit(ctx *app.RequestContext) (int, error) {
	raw := ctx.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, errors.New("invalid limit")
	}
	return limit, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrEngineDisabled):
		writeErrorBody(ctx, consts.StatusConflict, "engine_disabled", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
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
