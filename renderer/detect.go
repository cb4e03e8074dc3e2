// Copyright 2026 The MicroSerial Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderer

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/microserial/microserial"
	"github.com/microserial/microserial/backend"
)

// Detect walks the fallback plan from index start and returns the first
// attempt whose probe succeeds.
//
// Each attempt writes its complete environment configuration before
// probing, so the outcome does not depend on earlier attempts. When every
// attempt fails Detect returns an *ExhaustedError. A start at or beyond
// the end of the plan is exhaustion with no failures; a negative start is
// treated as zero.
//
// Detect writes to the process environment through the launch's
// Environment and must not run concurrently with other graphics
// initialisation.
func Detect(launch *LaunchConfig, start int, opts ...Option) (*Selection, error) {
	o := newDetectOptions(launch, opts)
	sel, _, err := detect(launch, start, o)
	return sel, err
}

// detect also returns the skeleton diagnostics, which RunHeadlessProbe
// reports when no attempt succeeds.
func detect(launch *LaunchConfig, start int, o detectOptions) (*Selection, Diagnostics, error) {
	log := microserial.Logger()
	plan := launch.Attempts()
	start = max(start, 0)

	skeleton := Diagnostics{
		ForcedSoftware: launch.ForceSoftware,
		EnvForced:      launch.EnvForced,
		Compositor:     DetectCompositor(o.env),
		StartedAt:      o.clock.Now(),
	}

	var failures []string
	state := Begin(len(plan), start)
	for state.Phase == PhaseProbing {
		idx := state.Index
		a := plan[idx]

		diag := skeleton
		diag.FallbackUsed = idx > start || len(failures) > 0

		cfg := a.Apply(launch)
		log.Debug("renderer: trying attempt",
			"index", idx,
			"label", a.Label(),
			"request", cfg.Request.String(),
			EnvBackend, cfg.Env.Backend.String(),
			EnvSoftwareRasterizer, cfg.Env.SoftwareRasterizer.String(),
			EnvPowerPreference, cfg.Env.PowerPreference.String())

		info, probed, err := probe(a, cfg, o)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", a.Label(), err))
			log.Warn("renderer: attempt failed", "label", a.Label(), "err", err)
			state = Next(len(plan), idx, false)
			continue
		}

		diag.SoftwareBackend = cfg.SoftwareRequired
		if probed {
			diag.describeAdapter(info)
		}
		opts := a.HostOptions(diag)
		diag.Backend = opts.Renderer
		diag.FailureReason = strings.Join(failures, FailureSeparator)

		state = Next(len(plan), idx, true)
		log.Info("renderer: selected",
			"state", state.String(),
			"platform", launch.Platform(),
			"prober", proberName(o.prober),
			"label", a.Label(),
			"renderer", opts.Renderer,
			"adapter", opts.Adapter.Name,
			"fallback", diag.FallbackUsed)

		return &Selection{
			AttemptIndex: state.Index,
			AttemptLabel: a.Label(),
			Request:      cfg.Request,
			Options:      opts,
			Diagnostics:  diag,
		}, skeleton, nil
	}

	return nil, skeleton, &ExhaustedError{Failures: failures}
}

func probe(a Attempt, cfg Config, o detectOptions) (gputypes.AdapterInfo, bool, error) {
	if err := cfg.Env.Apply(o.env); err != nil {
		return gputypes.AdapterInfo{}, false, fmt.Errorf("apply environment: %w", err)
	}
	return a.Probe(o.prober, cfg)
}

// proberName reports the registry name of p, or its type for probers that
// are not backend.Named.
func proberName(p backend.Prober) string {
	if n, ok := p.(backend.Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}
