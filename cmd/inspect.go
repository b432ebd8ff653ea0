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
	"strconv"
	"strings"

	"github.com/gnames/ednamap/internal/ioingest"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getInspectCmd returns the inspect command.
func getInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect <dataset-id>",
		Short: "Parse one dataset and report what ingestion would do",
		Long: `Inspect parses a single registered dataset without building
records and prints the resulting row, drop and location counts. Use it
to verify a new datasets.yaml entry before a full ingestion run.

Example:
  ednamap inspect 3`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}

	return inspectCmd
}

func runInspect(_ *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		gn.Warn("Invalid dataset ID <em>%s</em>", args[0])
		return err
	}

	ds, err := loadDatasets(strconv.Itoa(id))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	rep, err := ioingest.New(cfg, nil).
		Inspect(context.Background(), ds[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	printReport(*rep)
	if len(rep.Sheets) > 0 {
		fmt.Printf("Sheets: %s\n", strings.Join(rep.Sheets, ", "))
	}
	if len(rep.Columns) > 0 {
		fmt.Printf("Columns: %s\n", strings.Join(rep.Columns, ", "))
	}
	return nil
}
