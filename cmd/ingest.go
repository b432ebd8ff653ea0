/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/ednamap/internal/iodatasets"
	"github.com/gnames/ednamap/internal/ioingest"
	"github.com/gnames/ednamap/internal/iostore"
	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/datasets"
	"github.com/gnames/ednamap/pkg/ednamap"
	"github.com/gnames/ednamap/pkg/parserpool"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getIngestCmd returns the ingest command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getIngestCmd() *cobra.Command {
	var filter string
	var save bool

	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest registered survey files",
		Long: `Ingest parses the survey files registered in datasets.yaml,
groups their rows into sampling locations, and prints a per-dataset
report.

With --save the resulting locations are written to the local store, so
the serve and export commands can run without re-parsing the files.

The --datasets flag limits ingestion to a subset of the registry:
  ednamap ingest -d "1,3"
  ingests datasets with IDs 1 and 3.

  ednamap ingest -d "2-5" --save
  ingests datasets 2 through 5 and saves the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, filter, save)
		},
	}

	ingestCmd.Flags().StringVarP(&filter, "datasets", "d", "",
		"dataset IDs to ingest (e.g. '1,3' or '2-5')")
	ingestCmd.Flags().BoolVarP(&save, "save", "s", false,
		"save ingested locations to the local store")

	return ingestCmd
}

func runIngest(_ *cobra.Command, filter string, save bool) error {
	ctx := context.Background()

	ds, err := loadDatasets(filter)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	pool := maybeParserPool()
	if pool != nil {
		defer pool.Close()
	}

	res, err := ioingest.New(cfg, pool).Ingest(ctx, ds)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	printReports(res.Reports)
	gn.Info("Ingested <em>%s</em> locations from <em>%d</em> datasets",
		humanize.Comma(int64(len(res.Locations))), len(ds))

	if !save {
		return nil
	}

	storePath := config.StoreFilePath(cfg.HomeDir)
	st, err := iostore.New(storePath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer st.Close()

	if err = st.Save(ctx, res.Locations); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Saved locations to <em>%s</em>", storePath)
	return nil
}

// loadDatasets reads datasets.yaml, surfaces its validation warnings,
// and applies the optional ID filter.
func loadDatasets(filter string) ([]datasets.DatasetConfig, error) {
	dsCfg, err := iodatasets.New(cfg).Load()
	if err != nil {
		return nil, err
	}

	for _, w := range dsCfg.Warnings {
		gn.Warn("Dataset <em>%d</em>, field '%s': %s (%s)",
			w.DatasetID, w.Field, w.Message, w.Suggestion)
	}

	ds, warnings, err := datasets.Filter(dsCfg.Datasets, filter)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		gn.Warn("%s", w)
	}
	return ds, nil
}

// maybeParserPool creates a gnparser pool when canonicalization is
// enabled.
func maybeParserPool() parserpool.Pool {
	if !cfg.Ingest.WithCanonical {
		return nil
	}
	return parserpool.NewPool(cfg.JobsNumber)
}

func printReports(reports []ednamap.DatasetReport) {
	for _, rep := range reports {
		printReport(rep)
	}
}

func printReport(rep ednamap.DatasetReport) {
	title := rep.Title
	if title == "" {
		title = rep.Path
	}

	if rep.Failed {
		gn.Warn("Dataset <em>%d</em> (%s) failed: %s",
			rep.DatasetID, title, rep.Error)
		return
	}

	fmt.Printf(
		"Dataset %d (%s): %s rows, %s dropped, %s locations\n",
		rep.DatasetID, title,
		humanize.Comma(int64(rep.Rows)),
		humanize.Comma(int64(rep.Dropped)),
		humanize.Comma(int64(rep.Locations)),
	)
}
