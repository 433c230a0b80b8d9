package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/ddehost/internal/domain"
	"github.com/bnema/ddehost/internal/ports"
)

var ErrForeignMethod = errors.New("method was not resolved by this runtime")

// methodSuffixes are tried in order when locating a method executable.
var methodSuffixes = []string{"", ".exe", ".cmd", ".bat"}

type runFunc func(ctx context.Context, path string, args ...string) (stdout string, stderr string, err error)

// Runtime maps classes to directories under root and static methods to
// executables inside them. Calls run synchronously with the argument as the
// only command-line parameter, or none when the argument is nil.
type Runtime struct {
	root string
	run  runFunc
}

var _ ports.Runtime = (*Runtime)(nil)

func New(root string) *Runtime {
	return &Runtime{root: filepath.Clean(root), run: runCommand}
}

func (r *Runtime) FindClass(path string) (ports.Class, bool) {
	rel := filepath.FromSlash(strings.Trim(path, "/"))
	if rel == "" || rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return nil, false
	}

	dir := filepath.Join(r.root, rel)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, false
	}

	return &class{path: path, dir: dir}, true
}

func (r *Runtime) GetStaticMethod(cls ports.Class, name string, signature string) (ports.Method, bool) {
	c, ok := cls.(*class)
	if !ok || c == nil {
		return nil, false
	}
	if signature != domain.ExecuteSignature || name == "" || strings.ContainsAny(name, `/\`) {
		return nil, false
	}

	for _, suffix := range methodSuffixes {
		candidate := filepath.Join(c.dir, name+suffix)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return &method{class: c, name: name, signature: signature, path: candidate}, true
	}

	return nil, false
}

func (r *Runtime) CallStatic(m ports.Method, arg *string) error {
	resolved, ok := m.(*method)
	if !ok || resolved == nil {
		return ErrForeignMethod
	}

	var args []string
	if arg != nil {
		args = []string{*arg}
	}

	_, stderr, err := r.run(context.Background(), resolved.path, args...)
	if err != nil {
		return formatError(resolved, err, stderr)
	}
	return nil
}

func runCommand(ctx context.Context, path string, args ...string) (string, string, error) {
	cmd := osexec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(m *method, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("run %s.%s: %w", m.class.path, m.name, err)
	}

	return fmt.Errorf("run %s.%s: %w: %s", m.class.path, m.name, err, stderr)
}

type class struct {
	path string
	dir  string
}

func (c *class) Path() string { return c.path }

type method struct {
	class     *class
	name      string
	signature string
	path      string
}

func (m *method) Name() string      { return m.name }
func (m *method) Signature() string { return m.signature }
