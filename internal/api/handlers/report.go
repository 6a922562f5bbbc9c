package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/api/models"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/config"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/report"
)

// RunReport handles POST /api/v1/report
func (h *ProjectionHandler) RunReport(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	cfg, err := resolveParams(config.Defaults(), req.Params)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	p := cfg.ToModelParams()

	res, err := h.cache.Run(h.engine, p)
	if err != nil {
		badRequest(c, "INVALID_PARAMETER", err)
		return
	}

	text, err := report.Briefing(p, res)
	if err != nil {
		h.log.Error().Err(err).Msg("briefing failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "PROJECTION_ERROR", Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, models.ReportResponse{Report: text})
}
