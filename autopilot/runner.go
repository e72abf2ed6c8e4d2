package autopilot

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

// ErrNoDecide is returned when a script does not define a decide function
var ErrNoDecide = errors.New("script must define a 'decide' function")

// Runner executes a pilot script with goja (pure Go JavaScript engine).
// The script is compiled once and keeps its own runtime, so globals survive
// between calls and a script may carry state from one tick to the next.
type Runner struct {
	mu     sync.Mutex
	name   string
	vm     *goja.Runtime
	decide goja.Callable
}

// NewRunner compiles the script and looks up its decide function
func NewRunner(name, code string) (*Runner, error) {
	program, err := goja.Compile(name, code, true)
	if err != nil {
		return nil, fmt.Errorf("script %s parse error: %w", name, err)
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	if _, err := vm.RunProgram(program); err != nil {
		return nil, fmt.Errorf("script %s execution failed: %w", name, err)
	}

	decide, ok := goja.AssertFunction(vm.Get("decide"))
	if !ok {
		return nil, fmt.Errorf("script %s: %w", name, ErrNoDecide)
	}

	return &Runner{name: name, vm: vm, decide: decide}, nil
}

// Name returns the script name used in error messages
func (r *Runner) Name() string {
	return r.name
}

// Decide calls decide(ctx) and converts the returned object into a Decision
func (r *Runner) Decide(ctx Context) (Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.decide(goja.Undefined(), r.vm.ToValue(ctx))
	if err != nil {
		return Decision{}, fmt.Errorf("decide function failed: %w", err)
	}
	if goja.IsUndefined(result) || goja.IsNull(result) {
		return Decision{}, nil
	}

	// Round trip through JSON so missing fields keep their zero values
	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return Decision{}, fmt.Errorf("failed to serialize result: %w", err)
	}

	var decision Decision
	if err := json.Unmarshal(resultJSON, &decision); err != nil {
		return Decision{}, fmt.Errorf("failed to parse script result: %w (result: %s)", err, string(resultJSON))
	}
	return decision, nil
}

// Validate checks that code is valid JavaScript defining a decide function
func Validate(code string) error {
	_, err := NewRunner("validate", code)
	return err
}
