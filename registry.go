package dropdown

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// Registry owns live widget instances. It is the parent event target of every
// instance it creates, so its listeners observe bubbling events. Listeners run
// while the registry is locked and must not call back into it.
type Registry struct {
	EventTarget
	dropdowns map[string]*Dropdown
	mu        sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		dropdowns: make(map[string]*Dropdown, 0),
	}
}

// AddEventListener registers listener on the registry itself. It takes the
// registry lock so it is safe alongside concurrent interactions.
func (registry *Registry) AddEventListener(eventType string, listener Listener) func() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	remove := registry.EventTarget.AddEventListener(eventType, listener)
	return func() {
		registry.mu.Lock()
		defer registry.mu.Unlock()
		remove()
	}
}

func (registry *Registry) Create(config Config) *Dropdown {
	dropdown := New(uuid.NewString())
	config.Apply(dropdown)
	dropdown.Parent = &registry.EventTarget

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.dropdowns[dropdown.ID] = dropdown
	return dropdown
}

func (registry *Registry) Delete(id string) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	dropdown, ok := registry.dropdowns[id]
	if !ok {
		return ErrorNotFound{}
	}
	dropdown.Parent = nil
	delete(registry.dropdowns, id)
	return nil
}

// Get returns a snapshot of the instance.
func (registry *Registry) Get(id string) (Dropdown, error) {
	var snapshot Dropdown
	err := registry.Update(id, func(dropdown *Dropdown) {
		snapshot = *dropdown
		snapshot.Options = slices.Clone(dropdown.Options)
	})
	return snapshot, err
}

func (registry *Registry) Len() int {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return len(registry.dropdowns)
}

// Update applies callback to the instance. Calls are serialized, so
// interactions are processed in arrival order.
func (registry *Registry) Update(id string, callback func(*Dropdown)) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	dropdown, ok := registry.dropdowns[id]
	if !ok {
		return ErrorNotFound{}
	}
	callback(dropdown)
	return nil
}
