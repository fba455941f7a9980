// Package starlarkpath exposes the fspath package to Starlark programs as a
// 'path' module. It is pure glue over the core's string conversion surface;
// the core has no dependency on this package.
package starlarkpath

import (
	"fmt"
	"path/filepath"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/Jumpaku/go-fspath"
)

// Module is the Starlark 'path' module. Install it in a thread's predeclared
// environment under the name "path".
var Module = &starlarkstruct.Module{
	Name: "path",
	Members: starlark.StringDict{
		"sep":       starlark.String(string([]rune{filepath.Separator})),
		"join":      starlark.NewBuiltin("path.join", Join),
		"base":      starlark.NewBuiltin("path.base", Base),
		"dir":       starlark.NewBuiltin("path.dir", Dir),
		"ext":       starlark.NewBuiltin("path.ext", Ext),
		"with_base": starlark.NewBuiltin("path.with_base", WithBase),
		"with_dir":  starlark.NewBuiltin("path.with_dir", WithDir),
		"is_abs":    starlark.NewBuiltin("path.is_abs", IsAbs),
		"exists":    starlark.NewBuiltin("path.exists", Exists),
		"expand":    starlark.NewBuiltin("path.expand", Expand),
		"cwd":       starlark.NewBuiltin("path.cwd", Cwd),
		"home":      starlark.NewBuiltin("path.home", Home),
	},
}

// Join implements path.join(p, *segments): joins one or more segments onto p.
func Join(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: got 0 arguments, want at least 1", b.Name())
	}
	first, ok := starlark.AsString(args[0])
	if !ok {
		return nil, fmt.Errorf("%s: for parameter 1: got %s, want string", b.Name(), args[0].Type())
	}
	segments := make([]string, 0, len(args)-1)
	for i, arg := range args[1:] {
		segment, ok := starlark.AsString(arg)
		if !ok {
			return nil, fmt.Errorf("%s: for parameter %d: got %s, want string", b.Name(), i+2, arg.Type())
		}
		segments = append(segments, segment)
	}
	return starlark.String(fspath.From(first).JoinAll(segments...).String()), nil
}

// Base implements path.base(p): the final component of p.
func Base(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &p); err != nil {
		return nil, err
	}
	return starlark.String(fspath.From(p).Basename()), nil
}

// Dir implements path.dir(p): the parent path of p.
func Dir(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &p); err != nil {
		return nil, err
	}
	return starlark.String(fspath.From(p).Dirname().String()), nil
}

// Ext implements path.ext(p): the extension of p's basename, with the
// basename-fallback behavior of fspath.Path.Extension. A path with no
// basename fails the call.
func Ext(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &p); err != nil {
		return nil, err
	}
	ext, err := fspath.From(p).Extension()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.String(ext), nil
}

// WithBase implements path.with_base(p, name): p with its final component
// replaced by name.
func WithBase(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p, name string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &p, &name); err != nil {
		return nil, err
	}
	return starlark.String(fspath.From(p).WithBasename(name).String()), nil
}

// WithDir implements path.with_dir(p, parent): parent joined with p's
// basename.
func WithDir(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p, parent string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &p, &parent); err != nil {
		return nil, err
	}
	return starlark.String(fspath.From(p).WithDirname(parent).String()), nil
}

// IsAbs implements path.is_abs(p).
func IsAbs(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &p); err != nil {
		return nil, err
	}
	return starlark.Bool(fspath.From(p).IsAbs()), nil
}

// Exists implements path.exists(p): whether p refers to an existing
// filesystem entry.
func Exists(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &p); err != nil {
		return nil, err
	}
	return starlark.Bool(fspath.From(p).Exists()), nil
}

// Expand implements path.expand(p): the canonical absolute form of p, or p
// unchanged when the target does not exist.
func Expand(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var p string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &p); err != nil {
		return nil, err
	}
	return starlark.String(fspath.From(p).Expand().String()), nil
}

// Cwd implements path.cwd(): the process's current working directory.
func Cwd(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	wd, err := fspath.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.String(wd.String()), nil
}

// Home implements path.home(): the current user's home directory.
func Home(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	home, err := fspath.Home()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.String(home.String()), nil
}
