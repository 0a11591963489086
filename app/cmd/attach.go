package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cappuccinotm/damlink/app/dam"
	"github.com/cappuccinotm/damlink/app/p4"
	"github.com/cappuccinotm/damlink/app/service"
	"github.com/cappuccinotm/damlink/pkg/logx"
	"golang.org/x/sync/errgroup"
)

// Attach attaches every weblink found in the changelist description to
// every file of that changelist.
type Attach struct {
	Args struct {
		Changelist string `positional-arg-name:"changelist" required:"true" description:"changelist id to process"`
	} `positional-args:"true"`
	ConfLocation string  `short:"c" long:"config_location" env:"CONFIG_LOCATION" description:"location of the configuration file"`
	DAM          DAMOpts `group:"dam" namespace:"dam" env-namespace:"DAM"`
	P4           P4Opts  `group:"p4" namespace:"p4" env-namespace:"P4"`
	CommonOpts
}

// Execute runs the command
func (a Attach) Execute(_ []string) error {
	cfg, err := assemble(a.ConfLocation, a.DAM, a.P4)
	if err != nil {
		return fmt.Errorf("assemble configuration: %w", err)
	}

	if cfg.DAM.Address == "" || cfg.DAM.AccountKey == "" {
		a.Logger.Printf("[WARN] dam server address or account key is not set, weblinks will not be attached")
	}

	linker := &service.Linker{
		Changes: p4.NewCLI(p4.CLIParams{
			Binary: cfg.P4.Binary,
			Port:   cfg.P4.Port,
			User:   cfg.P4.User,
			Logger: logx.Sub(a.Logger, "[p4]: "),
		}),
		DAM: dam.NewClient(dam.ClientParams{
			BaseURL:    cfg.DAM.Address,
			AccountKey: cfg.DAM.AccountKey,
			Timeout:    cfg.DAM.Timeout,
			Logger:     logx.Sub(a.Logger, "[dam]: "),
		}),
		Log: logx.Sub(a.Logger, "[linker]: "),
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		select {
		case sig := <-sig:
			a.Logger.Printf("[WARN] caught signal %s, stopping", sig)
			stop()
			return ErrInterrupted
		case <-ctx.Done():
			return nil
		}
	})
	eg.Go(func() error {
		defer stop()
		if err := linker.Run(ctx, a.Args.Changelist); err != nil {
			return fmt.Errorf("process changelist %s: %w", a.Args.Changelist, err)
		}
		return nil
	})

	return eg.Wait()
}
