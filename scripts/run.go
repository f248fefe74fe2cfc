package scripts

import (
	"github.com/reusee/lexpr/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Run executes a Starlark program with the toolkit builtins predeclared and
// returns its globals. src may be nil to load from the named file, or a
// string or byte slice.
type Run func(name string, src any) (starlark.StringDict, error)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

func (Module) Run(
	logger logs.Logger,
) Run {
	return func(name string, src any) (starlark.StringDict, error) {
		logger.Debug("run script", "name", name)
		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				logger.Info("script output", "name", name, "message", msg)
			},
		}
		return starlark.ExecFileOptions(fileOptions, thread, name, src, Builtins())
	}
}
