// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2025 ReifyDB

package vm

import (
	"context"

	lru "github.com/hashicorp/golang-lru/arc/v2"

	"github.com/reifydb/reifydb/column"
)

// Pipeline is a lazy stream of batches, the VM-level analogue of the
// original's boxed async Stream<Columns> (spec.md §4.7 "pipeline_stack:
// active lazy batch streams"). Next returns (nil, false, nil) once the
// pipeline is exhausted.
type Pipeline interface {
	Next(ctx context.Context) (*column.Columns, bool, error)
	Close() error
}

// Frame is a materialized batch reachable by FrameLen/FrameRow/GetField —
// the SUPPLEMENT-retained row-indexing opcodes from the original's frame
// support (spec.md SUPPLEMENT "Record/FrameRow/GetField kept as live
// features").
type Frame struct {
	Columns *column.Columns
}

func (f *Frame) Len() int { return f.Columns.Len() }

// ScanState is one in-progress source scan. OpenScan/NextBatch/Close is the
// VM ↔ storage boundary (spec.md §6 "VM ↔ storage interface": open_scan,
// next_batch).
type ScanState interface {
	NextBatch(ctx context.Context, batchSize int) (*column.Columns, bool, error)
	Close() error
}

// Source opens scans against named storage targets. The VM never
// interprets SourceDef.Name itself; it is opaque beyond this interface.
type Source interface {
	OpenScan(ctx context.Context, def SourceDef) (ScanState, error)
}

// scanTable tracks active_scans keyed by the u16 id the bytecode assigns
// them (spec.md §4.7 "active_scans: id -> in-progress source scan state,
// with LRU eviction"). Grounded on golang-lru/arc/v2, per SPEC_FULL's
// DOMAIN STACK entry for the VM.
//
// ARCCache has no eviction callback the way the simple LRU cache does, so
// an evicted scan's cursor is not closed at the moment of eviction the way
// the original closes it. The interpreter only adds entries (Source) and
// never looks one up: FetchBatch reads from the pipeline on top of the
// pipeline stack. See DESIGN.md.
type scanTable struct {
	cache *lru.ARCCache[uint16, ScanState]
}

func newScanTable(size int) (*scanTable, error) {
	c, err := lru.NewARC[uint16, ScanState](size)
	if err != nil {
		return nil, err
	}
	return &scanTable{cache: c}, nil
}

func (t *scanTable) put(id uint16, s ScanState) { t.cache.Add(id, s) }

func (t *scanTable) get(id uint16) (ScanState, bool) { return t.cache.Get(id) }

func (t *scanTable) remove(id uint16) { t.cache.Remove(id) }

// inlinePipeline wraps a fixed set of already-materialized batches, backing
// the Inline opcode (spec.md §4.7 "Inline: push a pipeline over
// caller-supplied batches rather than a storage scan").
type inlinePipeline struct {
	batches []*column.Columns
	pos     int
}

func newInlinePipeline(batches []*column.Columns) *inlinePipeline {
	return &inlinePipeline{batches: batches}
}

func (p *inlinePipeline) Next(context.Context) (*column.Columns, bool, error) {
	if p.pos >= len(p.batches) {
		return nil, false, nil
	}
	b := p.batches[p.pos]
	p.pos++
	return b, true, nil
}

func (p *inlinePipeline) Close() error { return nil }

// scanPipeline adapts a ScanState into a Pipeline, backing Source+FetchBatch.
type scanPipeline struct {
	scan      ScanState
	batchSize int
}

func newScanPipeline(scan ScanState, batchSize int) *scanPipeline {
	return &scanPipeline{scan: scan, batchSize: batchSize}
}

func (p *scanPipeline) Next(ctx context.Context) (*column.Columns, bool, error) {
	return p.scan.NextBatch(ctx, p.batchSize)
}

func (p *scanPipeline) Close() error { return p.scan.Close() }
