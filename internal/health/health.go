package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const checkTimeout = 5 * time.Second

// Status is the health state of the service or one of its dependencies.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult is the outcome of probing a single dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Report is the full readiness picture: the hard plan-store dependency plus
// which optional planning integrations are active.
type Report struct {
	Status   Status                 `json:"status"`
	Version  string                 `json:"version,omitempty"`
	Checks   map[string]CheckResult `json:"checks,omitempty"`
	Features map[string]bool        `json:"features,omitempty"`
}

// Checker probes the plan store. The store is the only dependency that can
// fail readiness; refresh scheduling and result recording degrade gracefully,
// so they are reported as features rather than checked.
type Checker struct {
	store    *redis.Client
	version  string
	features map[string]bool
}

func NewChecker(store *redis.Client, version string) *Checker {
	return &Checker{
		store:    store,
		version:  version,
		features: make(map[string]bool),
	}
}

// ReportFeature records whether an optional integration is active so
// readiness responses show the effective configuration. Not safe for
// concurrent use; call during startup wiring only.
func (c *Checker) ReportFeature(name string, enabled bool) {
	c.features[name] = enabled
}

// Check probes the plan store and assembles the readiness report.
func (c *Checker) Check(ctx context.Context) *Report {
	checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	report := &Report{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}
	if len(c.features) > 0 {
		report.Features = c.features
	}

	if c.store != nil {
		result := c.checkStore(checkCtx)
		report.Checks["plan_store"] = result
		if result.Status != StatusHealthy {
			report.Status = StatusUnhealthy
		}
	}

	return report
}

func (c *Checker) checkStore(ctx context.Context) CheckResult {
	start := time.Now()
	if err := c.store.Ping(ctx).Err(); err != nil {
		return CheckResult{
			Status: StatusUnhealthy,
			Error:  err.Error(),
		}
	}
	return CheckResult{
		Status:    StatusHealthy,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}

// LiveHandler answers liveness probes; the process being up is enough.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler answers readiness probes with the full report; an unhealthy
// plan store takes the service out of rotation.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		report := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if report.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, report)
	}
}
