package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/conn-castle/lvenv/internal/messages"
)

// Program is the inline program passed to the base interpreter with -c.
// It must stay valid for both Python 2 and Python 3 and print exactly one record.
const Program = `
import json
import os
import os.path
import site
import sys

def resolve(path):
    return os.path.realpath(os.path.abspath(path))

print(json.dumps({
    "version": list(sys.version_info[:3]),
    "executable": resolve(sys.executable),
    "prefix": resolve(sys.prefix),
    "exec_prefix": resolve(sys.exec_prefix),
    "lib": resolve(os.path.dirname(os.__file__)),
    "startup_module_path": os.path.join(resolve(os.path.dirname(site.__file__)), "site.py"),
}))
`

// record is the wire form printed by Program.
type record struct {
	Version    []int  `json:"version" validate:"len=3,dive,min=0"`
	Executable string `json:"executable" validate:"required,abspath"`
	Prefix     string `json:"prefix" validate:"required,abspath"`
	ExecPrefix string `json:"exec_prefix" validate:"required,abspath"`
	Lib        string `json:"lib" validate:"required,abspath"`
	SitePath   string `json:"startup_module_path" validate:"required,abspath"`
}

// Probe runs python once and returns the facts it reports about itself.
// Every failure is a *Failure. The call blocks until the interpreter exits or
// ctx is done; without a deadline a hung interpreter blocks forever.
func Probe(ctx context.Context, runner Runner, python string) (Info, error) {
	stdout, stderr, err := runner.Run(ctx, python, "-c", Program)
	if err != nil {
		stage := StageLaunch
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stage = StageExit
		}
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return Info{}, &Failure{
			Python: python,
			Stage:  stage,
			Stderr: strings.TrimSpace(string(stderr)),
			Err:    err,
		}
	}

	rec, err := decodeRecord(stdout)
	if err != nil {
		return Info{}, &Failure{Python: python, Stage: StageDecode, Err: err}
	}
	if err := validateRecord(rec); err != nil {
		return Info{}, &Failure{Python: python, Stage: StageValidate, Err: err}
	}
	return rec.info(), nil
}

// decodeRecord reads exactly one JSON object from data.
func decodeRecord(data []byte) (record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var rec record
	if err := dec.Decode(&rec); err != nil {
		return record{}, err
	}
	if dec.More() {
		return record{}, errors.New(messages.ProbeTrailingOutput)
	}
	return rec, nil
}

func (r record) info() Info {
	return Info{
		Version:    Version{Major: r.Version[0], Minor: r.Version[1], Micro: r.Version[2]},
		Executable: r.Executable,
		Prefix:     r.Prefix,
		ExecPrefix: r.ExecPrefix,
		Lib:        r.Lib,
		SitePath:   r.SitePath,
	}
}
