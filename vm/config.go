// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"time"

	"github.com/c2h5oh/datasize"
)

// Config bounds the VM's resource use per execution. ScanRetries and
// ScanBackoff configure the retry policy the Source instruction applies when
// opening a scan fails (spec.md §7 "resource errors are retryable").
// MaxBatchMemory is carried here but not read by the interpreter; no batch is
// rejected for its size.
type Config struct {
	BatchSize      int
	MaxBatchMemory datasize.ByteSize
	ScanRetries    int
	ScanBackoff    time.Duration
	ActiveScanLRU  int
}

func DefaultConfig() Config {
	return Config{
		BatchSize:      1024,
		MaxBatchMemory: 64 * datasize.MB,
		ScanRetries:    5,
		ScanBackoff:    50 * time.Millisecond,
		ActiveScanLRU:  32,
	}
}
