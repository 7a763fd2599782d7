package stage

import (
	"errors"
	"fmt"

	"github.com/conn-castle/lvenv/internal/messages"
)

// ErrMissingModule matches every *MissingModuleError with errors.Is.
var ErrMissingModule = errors.New(messages.StageMissingModule)

// MissingModuleError reports a bootstrap module absent from the base library.
// Files staged before the failure are left in place.
type MissingModuleError struct {
	Name string
	Path string
	Err  error
}

func (e *MissingModuleError) Error() string {
	return fmt.Sprintf(messages.StageMissingModuleFmt, e.Name, e.Path)
}

func (e *MissingModuleError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMissingModule.
func (e *MissingModuleError) Is(target error) bool {
	return target == ErrMissingModule
}
