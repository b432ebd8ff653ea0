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
	"os/signal"
	"syscall"

	"github.com/gnames/ednamap/internal/ioweb"
	"github.com/gnames/ednamap/pkg/record"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getServeCmd returns the serve command.
func getServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ingested locations over HTTP",
		Long: `Serve loads locations from the local store and exposes them
through a JSON API: marker descriptors with declutter layout, detail
views for selections, and marker icons.

Run "ednamap ingest --save" first to populate the store.

Examples:
  ednamap serve
  EDNAMAP_SERVER_PORT=9090 ednamap serve`,
		RunE: runServe,
	}

	return serveCmd
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	locs, err := loadStoredLocations(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if len(locs) == 0 {
		gn.Warn("The local store is empty. " +
			"Run <em>ednamap ingest --save</em> first.")
	}

	srv, err := ioweb.NewServer(cfg, locs)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Serving <em>%d</em> locations at <em>%s:%d</em>",
		len(locs), cfg.Server.Host, cfg.Server.Port)

	if err = srv.Serve(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

// loadStoredLocations opens the local store and reads all saved
// locations.
func loadStoredLocations(
	ctx context.Context,
) ([]record.LocationRecord, error) {
	st, err := storeFromConfig()
	if err != nil {
		return nil, err
	}
	defer st.Close()

	return st.Load(ctx)
}
