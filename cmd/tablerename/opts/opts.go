package opts

import (
	"io"

	"github.com/walteh/tablerename/pkg/config"
	"github.com/walteh/tablerename/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config    *config.Config
	Stdout    io.Writer
	Formatter status.Formatter
}
