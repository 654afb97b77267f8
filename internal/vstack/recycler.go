package vstack

// recycler keeps hidden containers on per-key stacks. The key of a container
// is recorded once, when it is created, and never changes afterwards.
type recycler struct {
	keys   map[Container]RecycleKey
	stacks map[RecycleKey][]Container
}

func (r *recycler) assign(c Container, key RecycleKey) {
	if key == "" {
		return
	}
	if r.keys == nil {
		r.keys = make(map[Container]RecycleKey)
	}
	if _, ok := r.keys[c]; ok {
		return
	}
	r.keys[c] = key
}

func (r *recycler) keyOf(c Container) (RecycleKey, bool) {
	key, ok := r.keys[c]
	return key, ok
}

// push stores c on its key's stack. It returns false when c has no key, in
// which case the caller drops the container.
func (r *recycler) push(c Container) (RecycleKey, bool) {
	key, ok := r.keys[c]
	if !ok {
		return "", false
	}
	if r.stacks == nil {
		r.stacks = make(map[RecycleKey][]Container)
	}
	r.stacks[key] = append(r.stacks[key], c)
	return key, true
}

// pop removes and returns the most recently pooled container for key.
func (r *recycler) pop(key RecycleKey) (Container, bool) {
	stack := r.stacks[key]
	if len(stack) == 0 {
		return nil, false
	}
	c := stack[len(stack)-1]
	stack[len(stack)-1] = nil
	r.stacks[key] = stack[:len(stack)-1]
	return c, true
}

func (r *recycler) pooled(key RecycleKey) int {
	return len(r.stacks[key])
}

func (r *recycler) contains(c Container) bool {
	key, ok := r.keys[c]
	if !ok {
		return false
	}
	for _, pooled := range r.stacks[key] {
		if pooled == c {
			return true
		}
	}
	return false
}
