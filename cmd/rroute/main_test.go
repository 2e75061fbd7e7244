package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
)

const testConfig = `
schemes:
  - myapp
routes:
  - pattern: /user/:userId
    class: UserViewController
  - pattern: /user/admin
    class: AdminViewController
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rroute.yaml")
	assert.Nil(t, os.WriteFile(path, []byte(testConfig), 0o600))

	var out strings.Builder
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--config", path))

	err := cmd.Execute()
	return out.String(), err
}

func TestResolve(t *testing.T) {
	out, err := run(t, "resolve", "myapp://user/42?tab=posts")
	assert.Nil(t, err)
	assert.Contains(t, out, "/user/:userId\tclass UserViewController")
	assert.Contains(t, out, "tab=posts")
	assert.Contains(t, out, "userId=42")
}

func TestResolveLiteralWins(t *testing.T) {
	out, err := run(t, "resolve", "/user/admin")
	assert.Nil(t, err)
	assert.Contains(t, out, "class AdminViewController")
}

func TestResolveNotFound(t *testing.T) {
	out, err := run(t, "resolve", "/user/1", "/missing")
	assert.True(t, errors.Is(err, rroute.ErrNotFound))
	assert.Contains(t, out, "/missing\tnot found")
	assert.Contains(t, out, "class UserViewController")
}

func TestResolveDump(t *testing.T) {
	out, err := run(t, "resolve", "--dump", "/user/7")
	assert.Nil(t, err)
	assert.Contains(t, out, "Pattern")
	assert.Contains(t, out, "/user/:userId")
}

func TestRoutes(t *testing.T) {
	out, err := run(t, "routes")
	assert.Nil(t, err)
	assert.Contains(t, out, "/user/admin")
	assert.Contains(t, out, "class AdminViewController")

	out, err = run(t, "routes", "--html")
	assert.Nil(t, err)
	assert.Contains(t, out, "<table")
}

func TestMissingConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"routes", "--config", filepath.Join(t.TempDir(), "none.yaml")})
	assert.True(t, cmd.Execute() != nil)
}

func TestVersion(t *testing.T) {
	var out strings.Builder
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--short"})

	assert.Nil(t, cmd.Execute())
	assert.Equal(t, strings.TrimSpace(out.String()), version)
}
