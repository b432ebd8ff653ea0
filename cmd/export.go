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
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/ednamap/internal/iodb"
	"github.com/gnames/ednamap/internal/ioexport"
	"github.com/gnames/ednamap/internal/iostore"
	"github.com/gnames/ednamap/pkg/config"
	"github.com/gnames/ednamap/pkg/ednamap"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getExportCmd returns the export command.
func getExportCmd() *cobra.Command {
	var force bool

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export ingested locations to PostgreSQL",
		Long: `Export loads locations from the local store and writes them
into PostgreSQL for downstream analysis.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks for existing tables and prompts for confirmation
  3. Creates the schema using GORM AutoMigrate
  4. Bulk-loads locations, sampling events and observations with COPY

Use --force to skip confirmation and drop existing tables.

Examples:
  ednamap export
  ednamap export --force
  ednamap export -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, force)
		},
	}

	exportCmd.Flags().BoolVarP(&force, "force", "f",
		false, "drop existing tables without confirmation")

	return exportCmd
}

func runExport(
	_ *cobra.Command,
	_ []string,
	force bool,
) error {
	ctx := context.Background()

	locs, err := loadStoredLocations(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(locs) == 0 {
		gn.Warn("The local store is empty. " +
			"Run <em>ednamap ingest --save</em> first.")
		return nil
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: %s@%s:%d/%s",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if hasTables && !force {
		if !confirmOverwrite() {
			gn.Info("Export cancelled")
			return nil
		}
	}

	exp := ioexport.New(cfg, op)
	if err = exp.Export(ctx, locs); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Exported <em>%d</em> locations to <em>%s</em>",
		len(locs), cfg.Database.Database)
	return nil
}

// confirmOverwrite prompts before an export drops existing tables.
func confirmOverwrite() bool {
	gn.Warn("\nWarning: Database contains existing tables.")
	gn.Warn("Exporting will drop ALL existing tables and data.")
	fmt.Print("\nDo you want to continue? (yes/no): ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "yes" || response == "y"
}

// storeFromConfig opens the local store at its configured location.
func storeFromConfig() (ednamap.Store, error) {
	return iostore.New(config.StoreFilePath(cfg.HomeDir))
}
