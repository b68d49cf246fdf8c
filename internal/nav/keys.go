package nav

import (
	"fmt"
	"sort"
	"strings"
)

// Action is what a key press asks the navigation state to do.
type Action int

const (
	None Action = iota
	MoveNext
	MovePrev
	FocusSearch
	Confirm
)

var actionNames = map[Action]string{
	None:        "none",
	MoveNext:    "move-next",
	MovePrev:    "move-prev",
	FocusSearch: "focus-search",
	Confirm:     "confirm",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction resolves an action name such as "move-next".
func ParseAction(name string) (Action, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	for action, n := range actionNames {
		if n == key {
			return action, nil
		}
	}
	return None, fmt.Errorf("unknown action %q", name)
}

// Keymap binds key strings (as Bubble Tea renders them) to actions. Several
// keys may share one action.
type Keymap map[string]Action

// DefaultKeymap returns the browse-mode bindings. "i" and "/" are aliases
// for the same transition.
func DefaultKeymap() Keymap {
	return Keymap{
		"j":     MoveNext,
		"down":  MoveNext,
		"k":     MovePrev,
		"up":    MovePrev,
		"i":     FocusSearch,
		"/":     FocusSearch,
		"enter": Confirm,
	}
}

// Lookup returns the action bound to key, or None.
func (k Keymap) Lookup(key string) Action {
	if k == nil {
		return None
	}
	return k[key]
}

// Merge returns a copy of k with overrides applied. Overrides map key
// strings to action names; "none" unbinds a key.
func (k Keymap) Merge(overrides map[string]string) (Keymap, error) {
	out := make(Keymap, len(k)+len(overrides))
	for key, action := range k {
		out[key] = action
	}
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		action, err := ParseAction(overrides[key])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		if action == None {
			delete(out, key)
			continue
		}
		out[key] = action
	}
	return out, nil
}

// Keys lists the keys bound to action, sorted.
func (k Keymap) Keys(action Action) []string {
	var keys []string
	for key, a := range k {
		if a == action {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
