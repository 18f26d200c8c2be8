package audit

import (
	"context"
	"fmt"
	"time"

	"droidsweep/backend/app/batch"
	"droidsweep/backend/app/services"
	"droidsweep/backend/global"
)

const RecommendDebloat = "debloat"

// Engine replays externally produced audit manifests: every debloat
// recommendation becomes one sequential disable through the shared toggle
// path, so recorder entries match manual toggles exactly.
type Engine struct {
	Audits    *services.AuditService
	Toggles   *services.ToggleService
	StepDelay time.Duration
}

func NewEngine(audits *services.AuditService, toggles *services.ToggleService, stepDelay time.Duration) *Engine {
	return &Engine{Audits: audits, Toggles: toggles, StepDelay: stepDelay}
}

// Apply replays the audit's debloat recommendations against deviceID. The
// audit is marked executed exactly once after the batch completes, whatever
// the per-package outcomes, which is what prevents duplicate replays.
func (e *Engine) Apply(ctx context.Context, auditID, deviceID string) (batch.Tally, error) {
	rec, err := e.Audits.Find(auditID)
	if err != nil {
		return batch.Tally{}, fmt.Errorf("load audit %s: %w", auditID, err)
	}
	if rec.Executed {
		return batch.Tally{}, fmt.Errorf("audit %s already executed", auditID)
	}
	manifest, err := rec.Manifest()
	if err != nil {
		return batch.Tally{}, fmt.Errorf("decode audit manifest: %w", err)
	}
	var pkgs []string
	for _, r := range manifest.AuditResults {
		if r.Recommendation == RecommendDebloat {
			pkgs = append(pkgs, r.PackageID)
		}
	}
	tally := batch.Run(ctx, pkgs, e.StepDelay, func(ctx context.Context, pkg string) error {
		return e.Toggles.Toggle(ctx, deviceID, pkg, false)
	})
	if ok, err := e.Audits.MarkExecuted(auditID); err != nil {
		global.Logger.Warn().Err(err).Str("audit", auditID).Msg("mark executed failed; audit may replay")
	} else if !ok {
		global.Logger.Warn().Str("audit", auditID).Msg("audit was marked executed concurrently")
	}
	global.Logger.Info().Str("audit", auditID).Str("device", deviceID).
		Int("succeeded", tally.Succeeded).Int("failed", tally.Failed).
		Msg("audit replay finished")
	return tally, nil
}
