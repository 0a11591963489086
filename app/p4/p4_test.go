package p4

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cappuccinotm/damlink/app/store"
	"github.com/cappuccinotm/damlink/pkg/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescribe(t *testing.T) {
	t.Run("changelist with files", func(t *testing.T) {
		out := []byte(`{"change":"42","user":"dev","time":"1660000000",` +
			`"desc":"Update textures (http://example.com/img.png)",` +
			`"depotFile0":"//depot/a.png","depotFile1":"//depot/b.png",` +
			`"rev0":"3","rev1":"1","action0":"edit","action1":"add","status":"submitted"}`)

		cl, err := parseDescribe(out)
		require.NoError(t, err)
		assert.Equal(t, store.Changelist{
			ID:          "42",
			Description: "Update textures (http://example.com/img.png)",
			Files:       []string{"//depot/a.png", "//depot/b.png"},
		}, cl)
	})

	t.Run("changelist without files", func(t *testing.T) {
		cl, err := parseDescribe([]byte(`{"change":"43","desc":"empty one"}`))
		require.NoError(t, err)
		assert.Equal(t, "43", cl.ID)
		assert.Empty(t, cl.Files)
	})

	t.Run("server error dictionary", func(t *testing.T) {
		_, err := parseDescribe([]byte(`{"data":"Change 9999 unknown.","generic":"17","severity":"3"}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Change 9999 unknown")
	})

	t.Run("not a json", func(t *testing.T) {
		_, err := parseDescribe([]byte(`Change 42 by dev@ws on 2022/08/08`))
		assert.Error(t, err)
	})
}

// stubs the p4 binary with a shell script printing canned describe output
func prepareStubBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub is not available on windows")
	}

	path := filepath.Join(t.TempDir(), "p4")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o700))
	return path
}

func TestCLI_Describe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		bin := prepareStubBinary(t, `echo '{"change":"42","desc":"fix (http://example.com/a)","depotFile0":"//depot/a.png"}'`)

		svc := NewCLI(CLIParams{Binary: bin, Logger: logx.Nop()})
		cl, err := svc.Describe(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, "fix (http://example.com/a)", cl.Description)
		assert.Equal(t, []string{"//depot/a.png"}, cl.Files)
	})

	t.Run("port and user forwarded", func(t *testing.T) {
		argsFile := filepath.Join(t.TempDir(), "args")
		bin := prepareStubBinary(t, fmt.Sprintf(`echo "$@" > %s
echo '{"change":"42","desc":"d"}'`, argsFile))

		svc := NewCLI(CLIParams{Binary: bin, Port: "perforce:1666", User: "dev", Logger: logx.Nop()})
		_, err := svc.Describe(context.Background(), "42")
		require.NoError(t, err)

		b, err := os.ReadFile(argsFile)
		require.NoError(t, err)
		assert.Equal(t, "-ztag -Mj -p perforce:1666 -u dev describe -s 42", strings.TrimSpace(string(b)))
	})

	t.Run("non-zero exit includes stderr", func(t *testing.T) {
		bin := prepareStubBinary(t, `echo 'Perforce password (P4PASSWD) invalid or unset.' >&2
exit 1`)

		svc := NewCLI(CLIParams{Binary: bin, Logger: logx.Nop()})
		_, err := svc.Describe(context.Background(), "42")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "P4PASSWD")
	})

	t.Run("missing binary", func(t *testing.T) {
		svc := NewCLI(CLIParams{Binary: filepath.Join(t.TempDir(), "nope"), Logger: logx.Nop()})
		_, err := svc.Describe(context.Background(), "42")
		assert.Error(t, err)
	})
}
