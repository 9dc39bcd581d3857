// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kortschak/cuffparse/cuffdiff"
	"github.com/kortschak/cuffparse/report"
)

const purpose = "Parse Cuffdiff output into several files."

// config holds the input and output file names and delimiters for a run.
// Relative paths are resolved against dir.
type config struct {
	dir string

	geneTracking      string
	geneTrackingDelim rune
	hidataOut         string
	hidataDelim       rune

	readGroups      string
	readGroupsDelim rune
	expressedOut    string

	diffs          string
	diffsDelim     rune
	significantOut string

	gctOut   string
	gctDelim rune

	log *log.Logger
}

func defaultConfig() config {
	return config{
		geneTracking:      "genes.fpkm_tracking",
		geneTrackingDelim: '\t',
		hidataOut:         "hidata_genes.tsv",
		hidataDelim:       '\t',

		readGroups:      "genes.read_group_tracking",
		readGroupsDelim: '\t',
		expressedOut:    "expressed_genes.tsv",

		diffs:          "gene_exp.diff",
		diffsDelim:     '\t',
		significantOut: "significant_genes.tsv",

		gctOut:   "gct.tsv",
		gctDelim: '\t',

		log: log.New(os.Stdout, "", 0),
	}
}

func (c config) path(name string) string {
	if c.dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.dir, name)
}

// run reads the cuffdiff tables described by cfg and writes the derived
// tables. It stops at the first error.
func run(cfg config) error {
	logger := cfg.log
	logger.Printf("\n***\n* %s\n* %s\n***", filepath.Base(os.Args[0]), purpose)

	tracking, sum, err := cuffdiff.ReadGeneTracking(cfg.path(cfg.geneTracking), cfg.geneTrackingDelim)
	if err != nil {
		return err
	}
	logInput(logger, cfg.path(cfg.geneTracking), sum)
	conditions := cuffdiff.StatusConditions(sum.Columns)

	readGroups, sum, err := cuffdiff.ReadReadGroups(cfg.path(cfg.readGroups), cfg.readGroupsDelim)
	if err != nil {
		return err
	}
	logInput(logger, cfg.path(cfg.readGroups), sum)

	diffs, sum, err := cuffdiff.ReadDiffs(cfg.path(cfg.diffs), cfg.diffsDelim)
	if err != nil {
		return err
	}
	logInput(logger, cfg.path(cfg.diffs), sum)

	diffs = cuffdiff.SignificantOnly(diffs)
	logSummary(logger, cfg.diffs+" significant=yes...", cuffdiff.DiffSummary(diffs, sum.Columns))

	logger.Print("\nHIDATA genes...")
	hidata := report.HIDATA(tracking, conditions)
	logger.Printf("Rows with HIDATA: %d", len(hidata.Rows))
	if len(hidata.Rows) != 0 {
		err = report.Write(cfg.path(cfg.hidataOut), hidata, report.WriteOptions{
			Delim:  cfg.hidataDelim,
			Header: true,
			Log:    logger,
		})
		if err != nil {
			return err
		}
	}

	m := report.Pivot(readGroups).WithMean()
	report.Info(logger, "Pivot table & status=OK & mean column...", m)

	m = m.Expressed()
	report.Info(logger, "Expressed genes (mean > 0)...", m)
	err = report.Write(cfg.path(cfg.expressedOut), m.Table(), report.WriteOptions{
		Delim:  cfg.readGroupsDelim,
		Index:  true,
		Header: true,
		Log:    logger,
	})
	if err != nil {
		return err
	}

	m = m.Annotate(report.NewGeneLookup(diffs)).Significant()
	report.Info(logger, "Significant genes...", m)
	err = report.Write(cfg.path(cfg.significantOut), m.Table(), report.WriteOptions{
		Delim:  cfg.diffsDelim,
		Index:  true,
		Header: true,
		Log:    logger,
	})
	if err != nil {
		return err
	}

	gct, err := report.GCT(m)
	if err != nil {
		return fmt.Errorf("making GCT: %w", err)
	}
	report.Info(logger, "Making GCT file...", gct)
	err = report.Write(cfg.path(cfg.gctOut), gct, report.WriteOptions{
		Delim: cfg.gctDelim,
		Log:   logger,
	})
	if err != nil {
		return err
	}

	logger.Print("\nDone!\n")
	return nil
}

// logInput logs the shape of an input table.
func logInput(logger *log.Logger, path string, sum cuffdiff.Summary) {
	logSummary(logger, "Input file: "+path, sum)
}

// logSummary logs message followed by the shape of a table.
func logSummary(logger *log.Logger, message string, sum cuffdiff.Summary) {
	logger.Printf("\n%s", message)
	logger.Printf("Rows: %d", sum.Rows)
	logger.Printf("Columns: %d", len(sum.Columns))
	logger.Printf("Empty cells: %d", sum.Empty)
}
