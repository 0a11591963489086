// Package p4 provides access to changelist descriptions through the
// Perforce command-line client.
package p4

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cappuccinotm/damlink/app/store"
	"github.com/cappuccinotm/damlink/pkg/logx"
)

//go:generate rm -f describer_mock.go
//go:generate moq -out describer_mock.go -fmt goimports . Describer

// Describer provides the description and the file list of a changelist.
type Describer interface {
	// Describe returns the free-text description and the ordered list of
	// affected depot files of the given changelist.
	Describe(ctx context.Context, changelist string) (store.Changelist, error)
}

// CLI talks to the Perforce server through the p4 command-line client.
type CLI struct {
	binary string
	port   string
	user   string
	l      logx.Logger
}

// CLIParams describes parameters to initialize CLI.
type CLIParams struct {
	Binary string // path to the p4 client, defaults to "p4"
	Port   string // perforce server address, passed as -p when set
	User   string // perforce user, passed as -u when set
	Logger logx.Logger
}

// NewCLI makes new instance of CLI.
func NewCLI(params CLIParams) *CLI {
	svc := &CLI{binary: params.Binary, port: params.Port, user: params.User, l: params.Logger}
	if svc.binary == "" {
		svc.binary = "p4"
	}
	if svc.l == nil {
		svc.l = logx.Nop()
	}
	return svc
}

// Describe runs "p4 describe -s" for the changelist and parses its
// tagged json output. Exactly one invocation of the client per call.
func (c *CLI) Describe(ctx context.Context, changelist string) (store.Changelist, error) {
	args := []string{"-ztag", "-Mj"}
	if c.port != "" {
		args = append(args, "-p", c.port)
	}
	if c.user != "" {
		args = append(args, "-u", c.user)
	}
	args = append(args, "describe", "-s", changelist)

	c.l.Printf("[DEBUG] running %s %s", c.binary, strings.Join(args, " "))

	out, err := exec.CommandContext(ctx, c.binary, args...).Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return store.Changelist{}, fmt.Errorf("%s describe: %w: %s",
				c.binary, err, strings.TrimSpace(string(ee.Stderr)))
		}
		return store.Changelist{}, fmt.Errorf("%s describe: %w", c.binary, err)
	}

	cl, err := parseDescribe(out)
	if err != nil {
		return store.Changelist{}, fmt.Errorf("parse describe output: %w", err)
	}

	return cl, nil
}

// parseDescribe parses the marshaled json dictionary printed by
// "p4 -ztag -Mj describe -s". Depot files are keyed depotFile0..depotFileN,
// they are collected back into a list preserving the numbering order.
func parseDescribe(out []byte) (store.Changelist, error) {
	var fields map[string]string
	if err := json.NewDecoder(bytes.NewReader(out)).Decode(&fields); err != nil {
		return store.Changelist{}, fmt.Errorf("unmarshal tagged output: %w", err)
	}

	if _, ok := fields["desc"]; !ok {
		// the server reports errors as a dictionary with a data field
		if data, ok := fields["data"]; ok {
			return store.Changelist{}, fmt.Errorf("p4 responded with error: %s", strings.TrimSpace(data))
		}
		return store.Changelist{}, fmt.Errorf("describe output misses description")
	}

	cl := store.Changelist{ID: fields["change"], Description: fields["desc"]}
	for i := 0; ; i++ {
		file, ok := fields[fmt.Sprintf("depotFile%d", i)]
		if !ok {
			break
		}
		cl.Files = append(cl.Files, file)
	}

	return cl, nil
}
