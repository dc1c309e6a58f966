// Command tuplegen writes the generated tuple family. It is the target of the
// go:generate directive in package tuple.
//
// Flags default from the environment:
//
//	TUPLEGEN_OUTPUT     --out      (default tuple_gen.go)
//	TUPLEGEN_PACKAGE    --package  (default tuple)
//	TUPLEGEN_MIN_ARITY  --min      (default 2)
//	TUPLEGEN_MAX_ARITY  --max      (default 10)
package main

import (
	"context"
	"os"

	"github.com/amp-labs/amp-generics/envutil"
	"github.com/amp-labs/amp-generics/internal/tuplegen"
	"github.com/amp-labs/amp-generics/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	envOutput   = "TUPLEGEN_OUTPUT"
	envPackage  = "TUPLEGEN_PACKAGE"
	envMinArity = "TUPLEGEN_MIN_ARITY"
	envMaxArity = "TUPLEGEN_MAX_ARITY"

	defaultOutput = "tuple_gen.go"
)

type options struct {
	out string
	cfg tuplegen.Config
}

func main() {
	ctx := context.Background()

	logger.ConfigureLogging(ctx, "tuplegen")

	if err := run(ctx, os.Args[1:]); err != nil {
		logger.Get(ctx).ErrorContext(ctx, "tuplegen failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	opts, err := optionsFromEnv()
	if err != nil {
		return err
	}

	cmd := newRootCommand(opts)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

func optionsFromEnv() (options, error) {
	base := tuplegen.DefaultConfig()

	arities, err := envutil.Combine2(
		envutil.Int[int](envMinArity, envutil.Default(base.MinArity)),
		envutil.Int[int](envMaxArity, envutil.Default(base.MaxArity)),
	).Value()
	if err != nil {
		return options{}, err
	}

	return options{
		out: envutil.String(envOutput).ValueOrElse(defaultOutput),
		cfg: tuplegen.Config{
			Package:  envutil.String(envPackage).ValueOrElse(base.Package),
			MinArity: arities.First(),
			MaxArity: arities.Second(),
		},
	}, nil
}

func newRootCommand(opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tuplegen",
		Short:         "Generate the TupleN types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			_, err := tuplegen.WriteFile(ctx, logger.Get(ctx), opts.cfg, opts.out)

			return err
		},
	}

	bindFlags(cmd.Flags(), &opts)

	return cmd
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.out, "out", opts.out, "file to write")
	flags.StringVar(&opts.cfg.Package, "package", opts.cfg.Package, "package name of the generated file")
	flags.IntVar(&opts.cfg.MinArity, "min", opts.cfg.MinArity, "smallest arity to emit")
	flags.IntVar(&opts.cfg.MaxArity, "max", opts.cfg.MaxArity, "largest arity to emit")
}
