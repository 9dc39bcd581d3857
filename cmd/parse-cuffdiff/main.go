// Copyright ©2020 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// parse-cuffdiff reformats cuffdiff output into several derived tables.
//
// It reads genes.fpkm_tracking, genes.read_group_tracking and gene_exp.diff
// from the working directory and writes the following tables.
//
//   - hidata_genes.tsv: per condition lists of genes with HIDATA status,
//     written only if there are any.
//   - expressed_genes.tsv: the condition by replicate FPKM matrix of genes
//     with a mean FPKM greater than zero.
//   - significant_genes.tsv: the expressed genes that are significantly
//     differentially expressed.
//   - gct.tsv: the significant genes in GCT format.
//
// Quantifications with FAIL or HIDATA status are excluded from the FPKM
// matrices. Progress is reported on stdout.
//
// usage: parse-cuffdiff
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, `usage: parse-cuffdiff

Parse Cuffdiff output in the working directory into several files.`)
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := defaultConfig()
	err := run(cfg)
	if err != nil {
		log.Fatal(err)
	}
}
