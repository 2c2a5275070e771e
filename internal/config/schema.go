// Copyright (C) NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved. This file is part of cc-backend.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

// engineConfigSchema describes the advisory tunables the engine exposes -
// everything named here is a hint the engine is free to use however it
// likes, not a correctness-affecting setting.
const engineConfigSchema = `{
  "type": "object",
  "description": "Configuration for the in-memory time-series query engine.",
  "properties": {
    "read-batch-size-hint": {
      "description": "Advisory row count a Partition.Read caller would like per ReadBatch.",
      "type": "integer",
      "minimum": 1
    },
    "series-set-channel-capacity": {
      "description": "Buffer capacity of the channel SeriesSetConverter publishes SeriesSets on.",
      "type": "integer",
      "minimum": 1
    },
    "merge-stream-channel-capacity": {
      "description": "Buffer capacity of the output channel for StringMergeStream and ReadMergeStream.",
      "type": "integer",
      "minimum": 1
    },
    "partition-read-channel-capacity": {
      "description": "Buffer capacity of the channel Partition.Read publishes ReadBatches on.",
      "type": "integer",
      "minimum": 1
    }
  },
  "required": ["read-batch-size-hint"]
}`
