package ioweb

import (
	"fmt"

	"github.com/gnames/ednamap/pkg/errcode"
	"github.com/gnames/gn"
)

// StartError creates an error for when the HTTP API cannot start.
func StartError(addr string, err error) error {
	msg := `Cannot start HTTP API

<em>Address:</em> %s

<em>Possible causes:</em>
  - Port is already in use
  - Address is not bindable on this host

<em>How to fix:</em>
  1. Check what holds the port: <em>lsof -i :%s</em>
  2. Change <em>server.port</em> in config.yaml`

	vars := []any{addr, addr}

	return &gn.Error{
		Code: errcode.ServeStartError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to start server: %w", err),
	}
}

func errBadParam(name, value string) error {
	return fmt.Errorf("invalid %s parameter: %q", name, value)
}
