package probe

import (
	"fmt"

	"github.com/conn-castle/lvenv/internal/messages"
)

// Stage identifies where probing a base interpreter failed.
type Stage string

const (
	// StageLaunch means the interpreter process could not be started.
	StageLaunch Stage = messages.ProbeStageLaunch
	// StageExit means the interpreter exited non-zero or was killed.
	StageExit Stage = messages.ProbeStageExit
	// StageDecode means stdout did not hold exactly one JSON record.
	StageDecode Stage = messages.ProbeStageDecode
	// StageValidate means the record decoded but is missing or malformed fields.
	StageValidate Stage = messages.ProbeStageValidate
)

// Failure reports that the base interpreter could not be probed.
type Failure struct {
	Python string
	Stage  Stage
	// Stderr is the trimmed standard error of the interpreter, if any.
	Stderr string
	Err    error
}

func (f *Failure) Error() string {
	if f.Stderr != "" {
		return fmt.Sprintf(messages.ProbeFailureStderrFmt, f.Python, f.Stage, f.Err, f.Stderr)
	}
	return fmt.Sprintf(messages.ProbeFailureFmt, f.Python, f.Stage, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
