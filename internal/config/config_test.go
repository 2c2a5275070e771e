// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsMinimalConfig(t *testing.T) {
	cfg, err := Validate(json.RawMessage(`{"read-batch-size-hint": 512}`))
	require.NoError(t, err)
	require.Equal(t, 512, cfg.ReadBatchSizeHint)
	require.Equal(t, 0, cfg.SeriesSetChannelCapacity)
}

func TestValidateAcceptsFullConfig(t *testing.T) {
	cfg, err := Validate(json.RawMessage(`{
		"read-batch-size-hint": 1000,
		"series-set-channel-capacity": 32,
		"merge-stream-channel-capacity": 16,
		"partition-read-channel-capacity": 64
	}`))
	require.NoError(t, err)
	require.Equal(t, EngineConfig{
		ReadBatchSizeHint:            1000,
		SeriesSetChannelCapacity:     32,
		MergeStreamChannelCapacity:   16,
		PartitionReadChannelCapacity: 64,
	}, cfg)
}

func TestValidateRejectsMissingRequiredField(t *testing.T) {
	_, err := Validate(json.RawMessage(`{"series-set-channel-capacity": 32}`))
	require.Error(t, err)
}

func TestValidateRejectsWrongType(t *testing.T) {
	_, err := Validate(json.RawMessage(`{"read-batch-size-hint": "a lot"}`))
	require.Error(t, err)
}

func TestValidateRejectsMalformedJSON(t *testing.T) {
	_, err := Validate(json.RawMessage(`{not json`))
	require.Error(t, err)
}
