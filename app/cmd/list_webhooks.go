package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cappuccinotm/damlink/app/dam"
	"github.com/cappuccinotm/damlink/app/store"
	"github.com/cappuccinotm/damlink/pkg/logx"
)

// ListWebhooks prints the webhook integrations configured in the DAM
// account, the services weblinks are matched against.
type ListWebhooks struct {
	ConfLocation string  `short:"c" long:"config_location" env:"CONFIG_LOCATION" description:"location of the configuration file"`
	DAM          DAMOpts `group:"dam" namespace:"dam" env-namespace:"DAM"`
	CommonOpts
}

// Execute runs the command
func (l ListWebhooks) Execute(_ []string) error {
	cfg, err := assemble(l.ConfLocation, l.DAM, P4Opts{})
	if err != nil {
		return fmt.Errorf("assemble configuration: %w", err)
	}

	cl := dam.NewClient(dam.ClientParams{
		BaseURL:    cfg.DAM.Address,
		AccountKey: cfg.DAM.AccountKey,
		Timeout:    cfg.DAM.Timeout,
		Logger:     logx.Sub(l.Logger, "[dam]: "),
	})

	registry, err := cl.ListWebhooks(context.Background())
	if err != nil {
		return fmt.Errorf("fetch webhook registry: %w", err)
	}

	if registry.Len() == 0 {
		l.Logger.Printf("[INFO] no webhook integrations configured")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSERVICE\tUUID\tURL")
	registry.Scan(func(e store.Endpoint) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Service, e.UUID, e.URL)
	})

	return tw.Flush()
}
