package scripting

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/yahtzee/internal/game/dice"
	"github.com/cory-johannsen/yahtzee/internal/game/scoring"
)

// AggregateHook is the global Lua function Engine.Aggregate calls.
const AggregateHook = "aggregate"

// ErrNoHook is returned when the loaded scripts define no aggregate function.
var ErrNoHook = errors.New("scripting: aggregate hook not defined")

// Engine owns one sandboxed LState bound to a rule Registry.
//
// Engine is safe for concurrent use; calls into the VM are serialized.
type Engine struct {
	mu        sync.Mutex
	state     *lua.LState
	rules     *scoring.Registry
	instLimit int
	logger    *zap.Logger
}

// NewEngine creates an Engine whose scripts score hands against rules.
//
// Precondition: rules and logger must be non-nil; instLimit >= 0.
// Postcondition: Returns an Engine with the engine.* module registered.
func NewEngine(rules *scoring.Registry, instLimit int, logger *zap.Logger) *Engine {
	if rules == nil {
		panic("scripting: NewEngine precondition violated: rules must be non-nil")
	}
	if logger == nil {
		panic("scripting: NewEngine precondition violated: logger must be non-nil")
	}
	e := &Engine{
		state:     NewSandboxedState(instLimit),
		rules:     rules,
		instLimit: instLimit,
		logger:    logger,
	}
	e.RegisterModules(e.state)
	return e
}

// LoadFile executes the Lua file at path, defining its globals in the VM.
//
// Postcondition: Returns an error if the file cannot be read or fails to run.
func (e *Engine) LoadFile(path string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := withLimit(e.state, e.instLimit, func() error { return e.state.DoFile(path) }); err != nil {
		return fmt.Errorf("scripting: loading %q: %w", path, err)
	}
	return nil
}

// LoadString executes src in the VM.
func (e *Engine) LoadString(src string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := withLimit(e.state, e.instLimit, func() error { return e.state.DoString(src) }); err != nil {
		return fmt.Errorf("scripting: loading chunk: %w", err)
	}
	return nil
}

// Aggregate calls the script's aggregate(hand) function and returns its
// integer result.
//
// Postcondition: Returns ErrNoHook when aggregate is undefined, an error
// wrapping dice.ErrFaceRange for an invalid hand, and an error when the hook
// returns a non-integer. Lua runtime errors are logged at Warn level and
// returned.
func (e *Engine) Aggregate(h dice.Hand) (int, error) {
	if err := h.Validate(); err != nil {
		return 0, fmt.Errorf("scripting: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fn := e.state.GetGlobal(AggregateHook)
	if fn == lua.LNil {
		return 0, ErrNoHook
	}

	err := withLimit(e.state, e.instLimit, func() error {
		return e.state.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, handTable(e.state, h))
	})
	if err != nil {
		e.logger.Warn("scripting: Lua runtime error",
			zap.String("hook", AggregateHook),
			zap.Stringer("hand", h),
			zap.Error(err),
		)
		return 0, fmt.Errorf("scripting: %s: %w", AggregateHook, err)
	}

	ret := e.state.Get(-1)
	e.state.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("scripting: %s returned %s, want number", AggregateHook, ret.Type())
	}
	if lua.LNumber(int(n)) != n {
		return 0, fmt.Errorf("scripting: %s returned %v, want integer", AggregateHook, n)
	}
	return int(n), nil
}

// Close releases the VM.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Close()
}
