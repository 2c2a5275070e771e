// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config validates and decodes the engine's advisory configuration.
package config

import (
	"encoding/json"
	"fmt"

	cclog "github.com/ClusterCockpit/cc-lib/v2/ccLogger"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// EngineConfig carries the advisory tunables §9/§4.D/§4.F/§4.G-H name:
// batch-size hints and channel capacities. The zero value is valid; every
// field defaults to the engine's own built-in default when unset (0).
type EngineConfig struct {
	ReadBatchSizeHint            int `json:"read-batch-size-hint"`
	SeriesSetChannelCapacity     int `json:"series-set-channel-capacity"`
	MergeStreamChannelCapacity   int `json:"merge-stream-channel-capacity"`
	PartitionReadChannelCapacity int `json:"partition-read-channel-capacity"`
}

// Validate checks instance against the engine's JSON schema and, if it
// passes, decodes it into an EngineConfig.
//
// Unlike the host application's config validation (which calls
// cclog.Fatalf on failure, appropriate for a process that cannot start
// without a valid config), this returns an error: the engine is a library
// with no process lifecycle of its own to terminate, so a validation
// failure here must be something the embedding application can recover
// from.
func Validate(instance json.RawMessage) (EngineConfig, error) {
	sch, err := jsonschema.CompileString("engine-config.json", engineConfigSchema)
	if err != nil {
		// The schema itself is a compile-time constant; a failure here is a
		// bug in this package, not a caller error.
		cclog.Fatalf("[CONFIG]> invalid engine config schema: %#v", err)
	}

	var v any
	if err := json.Unmarshal(instance, &v); err != nil {
		return EngineConfig{}, fmt.Errorf("[CONFIG]> decoding engine config: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return EngineConfig{}, fmt.Errorf("[CONFIG]> validating engine config: %w", err)
	}

	var cfg EngineConfig
	if err := json.Unmarshal(instance, &cfg); err != nil {
		return EngineConfig{}, fmt.Errorf("[CONFIG]> decoding engine config: %w", err)
	}
	return cfg, nil
}
