package op

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownOperator is returned when no factory is registered for a name.
var ErrUnknownOperator = errors.New("op: unknown operator")

var registry = struct {
	sync.RWMutex
	factories map[string]func() Property
}{factories: make(map[string]func() Property)}

// Register routes an operator name to a descriptor factory.
// Registering the same name twice panics; names are global.
func Register(name string, factory func() Property) {
	registry.Lock()
	defer registry.Unlock()
	if _, dup := registry.factories[name]; dup {
		panic(fmt.Sprintf("op: operator %q registered twice", name))
	}
	registry.factories[name] = factory
}

// NewProperty creates and configures a descriptor for the named operator.
func NewProperty(name string, kwargs map[string]string) (Property, error) {
	registry.RLock()
	factory, ok := registry.factories[name]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
	prop := factory()
	if err := prop.Init(kwargs); err != nil {
		return nil, fmt.Errorf("op: configuring %q: %w", name, err)
	}
	return prop, nil
}

// Registered reports whether an operator name has a factory.
func Registered(name string) bool {
	registry.RLock()
	defer registry.RUnlock()
	_, ok := registry.factories[name]
	return ok
}
