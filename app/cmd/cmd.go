package cmd

import (
	"errors"
	"time"

	"github.com/cappuccinotm/damlink/pkg/logx"
)

// CommonOptionsCommander extends flags.Commander with SetCommon
// All commands should implement this interfaces
type CommonOptionsCommander interface {
	SetCommon(commonOpts CommonOpts)
	Execute(args []string) error
}

// CommonOpts sets externally from main, shared across all commands
type CommonOpts struct {
	Version string
	Logger  logx.Logger
}

// SetCommon satisfies CommonOptionsCommander interface and sets common option fields
// The method called by main for each command
func (c *CommonOpts) SetCommon(opts CommonOpts) {
	c.Version = opts.Version
	c.Logger = opts.Logger
}

// DAMOpts describes the connection parameters to the DAM server, shared by
// every command talking to it.
type DAMOpts struct {
	Address    string        `long:"address" env:"SERVER_ADDRESS" description:"base url of the DAM server"`
	AccountKey string        `long:"account_key" env:"ACCOUNT_KEY" description:"account key for the DAM API"`
	Timeout    time.Duration `long:"timeout" env:"TIMEOUT" description:"timeout of a single DAM API call"`
}

// P4Opts describes the connection parameters to the Perforce server.
type P4Opts struct {
	Binary string `long:"binary" env:"BINARY" description:"path to the p4 client binary"`
	Port   string `long:"port" env:"PORT" description:"perforce server address"`
	User   string `long:"user" env:"USER" description:"perforce user"`
}

// ErrInterrupted is returned when the signal to application to stop was caught.
var ErrInterrupted = errors.New("interrupted")
