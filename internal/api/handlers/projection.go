package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/analysis"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/api/models"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/config"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/model"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/projection"
	"github.com/Kaiguy277/Wrangle-GreenSparc/internal/report"
)

// ProjectionHandler handles projection-related requests. Runs are memoized by
// parameter fingerprint, so repeated identical requests are served from cache.
type ProjectionHandler struct {
	engine *projection.Engine
	cache  *projection.RunCache
	log    zerolog.Logger
}

func NewProjectionHandler(log zerolog.Logger) *ProjectionHandler {
	return &ProjectionHandler{
		engine: projection.New(),
		cache:  projection.NewRunCache(),
		log:    log,
	}
}

// RunProjection handles POST /api/v1/projection
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	if err := validateOptions(req.Options); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	cfg, err := resolveParams(config.Defaults(), req.Params)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	p := cfg.ToModelParams()

	key := projection.Fingerprint(p)
	_, cached := h.cache.Get(key)
	res, err := h.cache.Run(h.engine, p)
	if err != nil {
		badRequest(c, "INVALID_PARAMETER", err)
		return
	}

	summary, err := buildSummary(p, res, req.Options)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "PROJECTION_ERROR", Message: err.Error()},
		})
		return
	}

	resp := models.ProjectionResponse{
		Status:      "completed",
		Fingerprint: key,
		Cached:      cached,
		DebtService: res.DebtService,
		Summary:     summary,
	}
	if req.Options.IncludeTables {
		resp.Tables = convertTables(res)
	}
	c.JSON(http.StatusOK, resp)
}

// CompareProjections handles POST /api/v1/projection/compare
func (h *ProjectionHandler) CompareProjections(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	if err := validateOptions(req.Options); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	baseCfg, err := resolveParams(config.Defaults(), req.Base)
	if err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		cfg, err := resolveParams(baseCfg, variation.Params)
		if err != nil {
			badRequest(c, "INVALID_REQUEST", fmt.Errorf("variation %q: %w", variation.Name, err))
			return
		}
		p := cfg.ToModelParams()

		res, err := h.cache.Run(h.engine, p)
		if err != nil {
			badRequest(c, "INVALID_PARAMETER", fmt.Errorf("variation %q: %w", variation.Name, err))
			return
		}
		summary, err := buildSummary(p, res, req.Options)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{Code: "PROJECTION_ERROR", Message: err.Error()},
			})
			return
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:        variation.Name,
			DebtService: res.DebtService,
			Summary:     summary,
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// GetDefaults handles GET /api/v1/defaults
func (h *ProjectionHandler) GetDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, config.Defaults())
}

// ListScenarios handles GET /api/v1/scenarios
func ListScenarios(c *gin.Context) {
	out := make([]models.ScenarioInfo, 0, 3)
	for _, sc := range model.Scenarios() {
		out = append(out, models.ScenarioInfo{
			ID:           string(sc),
			Label:        sc.Label(),
			HasExpansion: sc.HasExpansion(),
			HasAnchor:    sc.HasAnchor(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// Helper methods

// validateOptions rejects request options before any projection runs. The
// savings window end is fixed at the analysis horizon, so only the start is
// caller-controlled.
func validateOptions(opts models.ProjectionOptions) error {
	if opts.SavingsFromYear != 0 && (opts.SavingsFromYear < model.StartYear || opts.SavingsFromYear > model.EndYear) {
		return fmt.Errorf("savings_from_year must be within %d..%d, got %d", model.StartYear, model.EndYear, opts.SavingsFromYear)
	}
	return nil
}

// resolveParams overlays a partial JSON parameter object on a base set.
// Absent fields keep the base values; explicit zeros are respected.
func resolveParams(base config.ParamsConfig, raw json.RawMessage) (config.ParamsConfig, error) {
	if len(raw) == 0 {
		return base, nil
	}
	if err := json.Unmarshal(raw, &base); err != nil {
		return config.ParamsConfig{}, fmt.Errorf("params: %w", err)
	}
	return base, nil
}

func buildSummary(p model.Params, res *projection.Result, opts models.ProjectionOptions) (models.Summary, error) {
	rates := make([]models.ScenarioRate, 0, 3)
	for _, sc := range model.Scenarios() {
		target, ok := res.Table(sc).Record(report.TargetYear)
		if !ok {
			return models.Summary{}, fmt.Errorf("%s table missing %d", sc, report.TargetYear)
		}
		end, ok := res.Table(sc).Record(model.EndYear)
		if !ok {
			return models.Summary{}, fmt.Errorf("%s table missing %d", sc, model.EndYear)
		}
		rates = append(rates, models.ScenarioRate{
			Scenario:          string(sc),
			Label:             sc.Label(),
			RateTargetYear:    target.RetailRateKWh,
			RateEndYear:       end.RetailRateKWh,
			DeltaCentsVsToday: (target.RetailRateKWh - p.BaseRateKWh) * 100,
		})
	}

	d := analysis.DieselDisplacement(res.Table(model.StatusQuo), res.Table(model.ExpansionPlusAnchor))
	v := analysis.ExpansionViability(p, res.DebtService)

	fromYear := p.ExpansionYear
	if opts.SavingsFromYear != 0 {
		fromYear = opts.SavingsFromYear
	}
	hh, err := analysis.HouseholdSavings(
		res.Table(model.StatusQuo), res.Table(model.ExpansionPlusAnchor),
		fromYear, model.EndYear, p)
	if err != nil {
		return models.Summary{}, err
	}

	return models.Summary{
		TargetYear:  report.TargetYear,
		BaseRateKWh: p.BaseRateKWh,
		Rates:       rates,
		Displacement: models.Displacement{
			AvoidedDieselMWh:  d.AvoidedDieselMWh,
			AvoidedDieselCost: d.AvoidedDieselCost,
			AvoidedCO2Tonnes:  d.AvoidedCO2Tonnes,
			AvoidedBarrels:    d.AvoidedBarrels,
		},
		Viability: models.Viability{
			AnchorLoadMWh:        v.AnchorLoadMWh,
			AnnualMargin:         v.AnnualMargin,
			DebtService:          v.DebtService,
			CoverageRatio:        v.CoverageRatio,
			ResidualOnRatepayers: v.ResidualOnRatepayers,
			Surplus:              v.Surplus,
		},
		Households: models.Households{
			FromYear:               hh.FromYear,
			ToYear:                 hh.ToYear,
			CumulativePerHousehold: hh.CumulativePerHousehold,
			CommunityWide:          hh.CommunityWide,
		},
	}, nil
}

func convertTables(res *projection.Result) map[string][]models.YearRow {
	out := make(map[string][]models.YearRow, len(res.Tables))
	for sc, table := range res.Tables {
		rows := make([]models.YearRow, len(table))
		for i, r := range table {
			rows[i] = models.YearRow{
				Year:                 r.Year,
				CommunityLoadMWh:     r.CommunityLoadMWh,
				AnchorLoadMWh:        r.AnchorLoadMWh,
				TotalDemandMWh:       r.TotalDemandMWh,
				EffectiveHydroCapMWh: r.EffectiveHydroCapMWh,
				HydroDispatchMWh:     r.HydroDispatchMWh,
				DieselDispatchMWh:    r.DieselDispatchMWh,
				DieselUnitCost:       r.DieselUnitCost,
				HydroCost:            r.HydroCost,
				DieselCost:           r.DieselCost,
				DebtService:          r.DebtService,
				AnchorRevenue:        r.AnchorRevenue,
				TotalSystemCost:      r.TotalSystemCost,
				CommunityCost:        r.CommunityCost,
				RetailRateKWh:        r.RetailRateKWh,
			}
		}
		out[string(sc)] = rows
	}
	return out
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: err.Error()},
	})
}
