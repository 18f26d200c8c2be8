package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"droidsweep/backend/app/batch"
	"droidsweep/backend/app/services"
	"droidsweep/backend/global"
	"droidsweep/bridge"
)

type State string

const (
	StateIdle     State = "idle"
	StateDetected State = "detected"
	StateResolved State = "resolved"
)

// Detection is one observed system update whose package set conflicts with
// the recorded debloat history. Returned lists packages previously disabled
// by this tool but reported enabled again on the device.
type Detection struct {
	EventID  string    `json:"event_id"`
	DeviceID string    `json:"device_id"`
	Returned []string  `json:"returned"`
	State    State     `json:"state"`
	At       time.Time `json:"at"`
}

// Engine re-applies debloat actions undone by OS updates. Suppression of
// re-prompting is keyed per detection event, so two distinct updates on one
// device each get their own prompt.
type Engine struct {
	Transport bridge.Transport
	Toggles   *services.ToggleService
	Actions   *services.ActionService
	Acks      AckStore
	StepDelay time.Duration
}

func NewEngine(t bridge.Transport, toggles *services.ToggleService, actions *services.ActionService, acks AckStore, stepDelay time.Duration) *Engine {
	return &Engine{Transport: t, Toggles: toggles, Actions: actions, Acks: acks, StepDelay: stepDelay}
}

// Detect computes the returned-package set for a device after an observed
// system update. updateFingerprint identifies the update event (build
// fingerprint, patch timestamp); when empty a fresh one-shot id is minted.
// Returns nil when nothing returned or the event was already acknowledged.
func (e *Engine) Detect(ctx context.Context, deviceID, updateFingerprint string) (*Detection, error) {
	if updateFingerprint == "" {
		updateFingerprint = uuid.NewString()
	}
	eventID := deviceID + ":" + updateFingerprint

	acked, err := e.Acks.Acknowledged(ctx, eventID)
	if err != nil {
		global.Logger.Warn().Err(err).Str("event", eventID).Msg("ack lookup failed; prompting anyway")
	} else if acked {
		return nil, nil
	}

	disabled, err := e.Actions.DisabledPackages(deviceID)
	if err != nil {
		return nil, fmt.Errorf("load action history: %w", err)
	}
	if len(disabled) == 0 {
		return nil, nil
	}
	enabled, err := e.Transport.ListEnabledPackages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled packages: %w", err)
	}
	enabledSet := make(map[string]bool, len(enabled))
	for _, p := range enabled {
		enabledSet[p] = true
	}
	var returned []string
	for _, p := range disabled {
		if enabledSet[p] {
			returned = append(returned, p)
		}
	}
	if len(returned) == 0 {
		return nil, nil
	}
	global.Logger.Info().Str("device", deviceID).Int("returned", len(returned)).Msg("system update reverted debloat actions")
	return &Detection{EventID: eventID, DeviceID: deviceID, Returned: returned, State: StateDetected, At: time.Now()}, nil
}

// Resolve re-disables the selected packages sequentially, records each action
// and acknowledges the event. selection nil means the whole returned set. Per
// package failures are tallied, never fatal to the batch.
func (e *Engine) Resolve(ctx context.Context, d *Detection, selection []string) (batch.Tally, error) {
	if d == nil || d.State != StateDetected {
		return batch.Tally{}, fmt.Errorf("no pending detection to resolve")
	}
	if selection == nil {
		selection = d.Returned
	}
	tally := batch.Run(ctx, selection, e.StepDelay, func(ctx context.Context, pkg string) error {
		return e.Toggles.Toggle(ctx, d.DeviceID, pkg, false)
	})
	d.State = StateResolved
	if err := e.Acks.Acknowledge(ctx, d.EventID); err != nil {
		global.Logger.Warn().Err(err).Str("event", d.EventID).Msg("persisting acknowledgment failed")
	}
	global.Logger.Info().Str("device", d.DeviceID).
		Int("succeeded", tally.Succeeded).Int("failed", tally.Failed).
		Msg("reconciliation replay finished")
	return tally, nil
}

// Dismiss acknowledges the event without acting. The prompt will not return
// for this event; the packages stay enabled until the user acts elsewhere.
func (e *Engine) Dismiss(ctx context.Context, d *Detection) error {
	if d == nil {
		return fmt.Errorf("no detection to dismiss")
	}
	d.State = StateResolved
	return e.Acks.Acknowledge(ctx, d.EventID)
}
