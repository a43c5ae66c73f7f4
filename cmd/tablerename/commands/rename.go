package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/tablerename/cmd/tablerename/opts"
	"github.com/walteh/tablerename/pkg/log"
	"github.com/walteh/tablerename/pkg/operation"
	"github.com/walteh/tablerename/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// Rename rewrites the configured files in place
func Rename(ctx context.Context, o *opts.RootOpts) error {
	zlog := zerolog.Ctx(ctx)
	ctx = log.NewContext(ctx, log.New(o.Stdout, *zlog, o.Formatter))

	op, err := operation.NewRenameOperation(operation.Options{
		Config: o.Config,
		Files:  workspace.NewDir(o.Config.Root),
	})
	if err != nil {
		return errors.Errorf("creating rename operation: %w", err)
	}

	return operation.NewRunner(zlog).Run(ctx, op)
}
