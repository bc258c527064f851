package suites

import (
	"errors"
	"fmt"

	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/store"
	"github.com/ProtonMail/stopwatch/benchmarks/stopwatch_bench/suite"
	"github.com/ProtonMail/stopwatch/hooks"
	"github.com/ProtonMail/stopwatch/scenario"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Badger measures reads and writes on a badger store. Every phase gets a fresh store, opened by the
// before-scenario hook and removed by the after-scenario hook.
type Badger struct {
	valueSizes []int
	preload    int
	passphrase []byte
}

// NewBadger creates the suite. preload is the number of keys written before badger-get runs and must be positive.
func NewBadger(preload int, passphrase []byte, valueSizes ...int) *Badger {
	if preload < 1 {
		panic("badger suite needs at least one preloaded key")
	}

	return &Badger{
		valueSizes: valueSizes,
		preload:    preload,
		passphrase: passphrase,
	}
}

func (*Badger) Name() string {
	return "badger"
}

// badgerState is what the scenario hooks hand to the measured functions.
type badgerState struct {
	store *store.BadgerStore
	keys  [][]byte
	value []byte
}

func (b *Badger) Jobs() []scenario.Job {
	return []scenario.Job{
		{
			Name:  "badger-set",
			Func:  badgerSet,
			Hooks: b.hooks(0),
		},
		{
			Name:  "badger-get",
			Func:  badgerGet,
			Hooks: b.hooks(b.preload),
		},
	}
}

func (b *Badger) Inputs() []scenario.Input {
	inputs := make([]scenario.Input, 0, len(b.valueSizes))

	for _, size := range b.valueSizes {
		inputs = append(inputs, scenario.Input{Name: fmt.Sprintf("%vB", size), Value: size})
	}

	return inputs
}

func (b *Badger) hooks(preload int) hooks.Set {
	return hooks.Set{
		BeforeScenario: func(in any) (any, error) {
			st, err := store.NewTempBadgerStore(b.passphrase)
			if err != nil {
				return nil, err
			}

			state := &badgerState{
				store: st,
				keys:  make([][]byte, 0, preload),
				value: make([]byte, in.(int)),
			}

			if _, err := rand.Read(state.value); err != nil {
				return nil, errors.Join(err, st.Remove())
			}

			for i := 0; i < preload; i++ {
				state.keys = append(state.keys, []byte(uuid.NewString()))
			}

			if err := st.SetBatch(state.keys, state.value); err != nil {
				return nil, errors.Join(err, st.Remove())
			}

			return state, nil
		},
		AfterScenario: func(in any) error {
			return in.(*badgerState).store.Remove()
		},
	}
}

func badgerSet(in any) (any, error) {
	state := in.(*badgerState)

	key := uuid.New()

	return nil, state.store.Set(key[:], state.value)
}

func badgerGet(in any) (any, error) {
	state := in.(*badgerState)

	return state.store.Get(state.keys[rand.Intn(len(state.keys))])
}

func init() {
	suite.Register(NewBadger(1000, nil, 128, 4096))
}
