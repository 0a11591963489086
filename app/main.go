package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cappuccinotm/damlink/app/cmd"
	"github.com/cappuccinotm/damlink/pkg/logx"
	"github.com/hashicorp/logutils"
	"github.com/jessevdk/go-flags"
)

// Opts describes cli commands, arguments and flags of the application.
type Opts struct {
	Debug bool `long:"dbg" env:"DEBUG" description:"turn on debug mode"`
}

var version = "unknown"

func main() {
	fmt.Printf("damlink, version: %s\n", version)

	var opts Opts
	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(command flags.Commander, args []string) error {
		setupLog(opts.Debug)

		c := command.(cmd.CommonOptionsCommander)
		c.SetCommon(cmd.CommonOpts{
			Version: version,
			Logger:  logx.LoggerFunc(log.Printf),
		})

		if err := c.Execute(args); err != nil {
			log.Printf("[ERROR] failed to execute command %+v", err)
		}
		return nil
	}

	addCommand(p, "attach", "attach changelist weblinks",
		"extracts weblinks from the changelist description and attaches them to every file of the changelist",
		&cmd.Attach{})
	addCommand(p, "list-webhooks", "list webhook integrations",
		"prints the webhook integrations configured in the DAM account",
		&cmd.ListWebhooks{})

	// after failure command does not return non-zero code
	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}
}

func addCommand(p *flags.Parser, name, short, long string, command cmd.CommonOptionsCommander) {
	if _, err := p.AddCommand(name, short, long, command); err != nil {
		log.Fatalf("[ERROR] failed to register command %s: %v", name, err)
	}
}

func setupLog(dbg bool) {
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: "INFO",
		Writer:   os.Stdout,
	}

	logFlags := log.Ldate | log.Ltime

	if dbg {
		logFlags = log.Ldate | log.Ltime | log.Lmicroseconds | log.Llongfile
		filter.MinLevel = "DEBUG"
	}

	log.SetFlags(logFlags)
	log.SetOutput(filter)
}
