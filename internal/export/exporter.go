// Package export turns the workflow graphs of a store into a portable
// package: one CSV file per entity kind plus the descriptor inputs a loader
// needs to resolve every reference by name.
package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RealZimboGuy/wkfport/internal/dataconfig"
	"github.com/RealZimboGuy/wkfport/pkg/wkfport/domain"
)

// WkfRepo fetches the workflow graphs in scope, nodes and transitions included.
type WkfRepo interface {
	FindAll(ctx context.Context) ([]domain.Wkf, error)
}

// PackageWriter receives the files of the package.
type PackageWriter interface {
	AddCSV(name string, header []string, rows [][]string) error
}

// Exporter writes the workflow graphs of a store as module packages.
type Exporter struct {
	WkfRepo  WkfRepo
	Resolver *ModelResolver
}

// NewExporter reads graphs from wkfRepo and names target models with resolver.
func NewExporter(wkfRepo WkfRepo, resolver *ModelResolver) *Exporter {
	return &Exporter{WkfRepo: wkfRepo, Resolver: resolver}
}

// snapshot holds every row of one export, flattened across workflows.
type snapshot struct {
	wkfs        []WkfRow
	nodes       []WkfNodeRow
	transitions []WkfTransitionRow
}

// ExportWkf writes the workflow, node and transition files of moduleName to w
// and appends their inputs to cfg. Nothing is written when the store holds no
// workflow. Every row is encoded before the first file is written, so a
// missing required relation leaves w untouched. cfg is only extended once all
// files were accepted by w.
func (e *Exporter) ExportWkf(ctx context.Context, moduleName string, w PackageWriter, cfg *dataconfig.Config) error {
	wkfs, err := e.WkfRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("find workflows: %w", err)
	}
	if len(wkfs) == 0 {
		slog.Info("No workflow to export", "module", moduleName)
		return nil
	}

	snap, err := e.collect(ctx, moduleName, wkfs)
	if err != nil {
		return err
	}

	prefix := ModulePrefix(moduleName)
	files := []struct {
		kind   string
		header []string
		rows   [][]string
	}{
		{KindWkf, WkfHeader, cells(snap.wkfs)},
		{KindWkfNode, WkfNodeHeader, cells(snap.nodes)},
		{KindWkfTransition, WkfTransitionHeader, cells(snap.transitions)},
	}

	inputs := make([]dataconfig.Input, 0, len(files))
	for _, f := range files {
		if len(f.rows) == 0 {
			continue
		}
		name := FileName(prefix, f.kind)
		if err := w.AddCSV(name, f.header, f.rows); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		slog.Info("Exported file", "file", name, "rows", len(f.rows))
		inputs = append(inputs, InputFor(prefix, f.kind))
	}
	cfg.Add(inputs...)
	return nil
}

func (e *Exporter) collect(ctx context.Context, moduleName string, wkfs []domain.Wkf) (*snapshot, error) {
	snap := &snapshot{wkfs: make([]WkfRow, 0, len(wkfs))}
	for i := range wkfs {
		wkf := &wkfs[i]
		target, err := e.Resolver.Classify(ctx, wkf, moduleName)
		if err != nil {
			return nil, err
		}
		row, err := EncodeWkf(wkf, target)
		if err != nil {
			return nil, err
		}
		snap.wkfs = append(snap.wkfs, row)

		for j := range wkf.Nodes {
			snap.nodes = append(snap.nodes, EncodeNode(wkf.Name, &wkf.Nodes[j]))
		}
		for j := range wkf.Transitions {
			tr, err := EncodeTransition(wkf.Name, &wkf.Transitions[j])
			if err != nil {
				return nil, err
			}
			snap.transitions = append(snap.transitions, tr)
		}
	}
	return snap, nil
}
