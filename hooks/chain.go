package hooks

type before struct {
	fn     BeforeFunc
	global bool
}

type after struct {
	fn     AfterFunc
	global bool
}

// Chain is the resolved, ordered sequence of hooks for one scenario.
// It is built once per scenario so the timed path never has to choose between global and local hooks.
type Chain struct {
	beforeScenario []before
	beforeEach     []before
	afterEach      []after
	afterScenario  []after
}

// Resolve combines the global and local hook sets. Before hooks run global first, after hooks run local first.
func Resolve(global, local Set) *Chain {
	chain := &Chain{}

	chain.beforeScenario = appendBefore(chain.beforeScenario, global.BeforeScenario, true)
	chain.beforeScenario = appendBefore(chain.beforeScenario, local.BeforeScenario, false)

	chain.beforeEach = appendBefore(chain.beforeEach, global.BeforeEach, true)
	chain.beforeEach = appendBefore(chain.beforeEach, local.BeforeEach, false)

	chain.afterEach = appendAfter(chain.afterEach, local.AfterEach, false)
	chain.afterEach = appendAfter(chain.afterEach, global.AfterEach, true)

	chain.afterScenario = appendAfter(chain.afterScenario, local.AfterScenario, false)
	chain.afterScenario = appendAfter(chain.afterScenario, global.AfterScenario, true)

	return chain
}

// HasEach returns true if any each-hook, global or local, is configured.
func (c *Chain) HasEach() bool {
	return len(c.beforeEach) > 0 || len(c.afterEach) > 0
}

func (c *Chain) BeforeScenario(input any) (any, error) {
	return runBefore(c.beforeScenario, KindBeforeScenario, input)
}

func (c *Chain) BeforeEach(input any) (any, error) {
	return runBefore(c.beforeEach, KindBeforeEach, input)
}

func (c *Chain) AfterEach(value any) error {
	return runAfter(c.afterEach, KindAfterEach, value)
}

func (c *Chain) AfterScenario(input any) error {
	return runAfter(c.afterScenario, KindAfterScenario, input)
}

func appendBefore(list []before, fn BeforeFunc, global bool) []before {
	if fn == nil {
		return list
	}

	return append(list, before{fn: fn, global: global})
}

func appendAfter(list []after, fn AfterFunc, global bool) []after {
	if fn == nil {
		return list
	}

	return append(list, after{fn: fn, global: global})
}

func runBefore(list []before, kind Kind, input any) (any, error) {
	for _, hook := range list {
		next, err := hook.fn(input)
		if err != nil {
			return nil, &Error{Kind: kind, Global: hook.global, Err: err}
		}

		input = next
	}

	return input, nil
}

func runAfter(list []after, kind Kind, value any) error {
	for _, hook := range list {
		if err := hook.fn(value); err != nil {
			return &Error{Kind: kind, Global: hook.global, Err: err}
		}
	}

	return nil
}
