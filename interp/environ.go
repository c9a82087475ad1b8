// Copyright (c) 2017, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package interp

import (
	"fmt"
	"os"
	"strconv"

	"barleysh/expand"
)

// overlayEnviron adds a writable layer on top of a read-only [expand.Environ],
// so that assignments, local variables and unsets don't mutate the parent
// directly. Subshells and function calls each push another overlay, so that
// their writes are discarded once the subshell or call returns.
type overlayEnviron struct {
	parent expand.Environ

	values map[string]expand.Variable
	// deleted records names unset in this layer, so that a lookup doesn't
	// fall through to a value the parent still has.
	deleted map[string]struct{}

	// funcScope marks this overlay as having been pushed for a function
	// call frame, so "local" has somewhere to write to.
	funcScope bool
	// background marks this overlay as having been pushed for a
	// subshell or process substitution that runs without blocking the
	// parent shell.
	background bool
}

// newOverlayEnviron creates a writable overlay on top of parent. background
// is recorded but does not currently change write semantics; it documents
// that the overlay belongs to a shell running concurrently with its parent.
func newOverlayEnviron(parent expand.WriteEnviron, background bool) *overlayEnviron {
	return &overlayEnviron{parent: parent, background: background}
}

func (o *overlayEnviron) Get(name string) expand.Variable {
	if vr, ok := o.values[name]; ok {
		return vr
	}
	if _, ok := o.deleted[name]; ok {
		return expand.Variable{}
	}
	if o.parent == nil {
		return expand.Variable{}
	}
	return o.parent.Get(name)
}

func (o *overlayEnviron) Each(fn func(name string, vr expand.Variable) bool) {
	if o.parent != nil {
		keepGoing := true
		o.parent.Each(func(name string, vr expand.Variable) bool {
			if _, ok := o.values[name]; ok {
				return true
			}
			if _, ok := o.deleted[name]; ok {
				return true
			}
			keepGoing = fn(name, vr)
			return keepGoing
		})
		if !keepGoing {
			return
		}
	}
	for name, vr := range o.values {
		if !fn(name, vr) {
			return
		}
	}
}

func (o *overlayEnviron) Set(name string, vr expand.Variable) error {
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if old := o.Get(name); old.ReadOnly {
		return fmt.Errorf("%s: readonly variable", name)
	}
	if vr.Kind == expand.KeepValue {
		old := o.Get(name)
		old.Set, old.Local, old.Exported, old.ReadOnly = old.Set || vr.Set, vr.Local, vr.Exported, vr.ReadOnly
		vr = old
	}
	if !vr.IsSet() {
		delete(o.values, name)
		if o.deleted == nil {
			o.deleted = make(map[string]struct{})
		}
		o.deleted[name] = struct{}{}
		return nil
	}
	if o.values == nil {
		o.values = make(map[string]expand.Variable)
	}
	o.values[name] = vr
	delete(o.deleted, name)
	return nil
}

// setVar sets name to vr in the current write scope.
func (r *Runner) setVar(name string, vr expand.Variable) {
	if err := r.writeEnv.Set(name, vr); err != nil {
		r.errf("%v\n", err)
	}
}

// setVarString is a shorthand for [Runner.setVar] with a plain string value.
func (r *Runner) setVarString(name, value string) {
	r.setVar(name, expand.Variable{Set: true, Kind: expand.String, Str: value})
}

// envGet reads a variable's string value from the current write scope.
func (r *Runner) envGet(name string) string {
	return r.writeEnv.Get(name).String()
}

// lookupVar resolves a name to its [expand.Variable], handling the special
// parameters ($@, $*, $#, positional params, $?, $$, $!, $0, $-) that live
// outside the regular variable overlay before falling back to it.
func (r *Runner) lookupVar(name string) expand.Variable {
	if name == "" {
		return expand.Variable{}
	}
	if n, err := strconv.Atoi(name); err == nil {
		if n == 0 {
			return expand.Variable{Set: true, Kind: expand.String, Str: r.filename}
		}
		if n < 1 || n > len(r.Params) {
			return expand.Variable{}
		}
		return expand.Variable{Set: true, Kind: expand.String, Str: r.Params[n-1]}
	}
	switch name {
	case "@", "*":
		return expand.Variable{Set: true, Kind: expand.Indexed, List: r.Params}
	case "#":
		return expand.Variable{Set: true, Kind: expand.String, Str: strconv.Itoa(len(r.Params))}
	case "?":
		return expand.Variable{Set: true, Kind: expand.String, Str: strconv.Itoa(int(r.lastExit.code))}
	case "$":
		return expand.Variable{Set: true, Kind: expand.String, Str: strconv.Itoa(os.Getpid())}
	case "!":
		if len(r.bgProcs) == 0 {
			return expand.Variable{}
		}
		return expand.Variable{Set: true, Kind: expand.String, Str: "g" + strconv.Itoa(len(r.bgProcs))}
	case "-":
		return expand.Variable{Set: true, Kind: expand.String, Str: r.optFlags()}
	}
	return r.writeEnv.Get(name)
}

// optFlags renders the single-letter shell options currently enabled, for
// use as the value of the $- special parameter.
func (r *Runner) optFlags() string {
	var flags []byte
	for i, opt := range &shellOptsTable {
		if opt.flag != ' ' && r.opts[i] {
			flags = append(flags, opt.flag)
		}
	}
	return string(flags)
}
