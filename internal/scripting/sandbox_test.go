package scripting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"pgregory.net/rapid"
)

func TestEffectiveLimit(t *testing.T) {
	for in, want := range map[int]int{
		-5:  DefaultInstructionLimit,
		0:   DefaultInstructionLimit,
		1:   1,
		250: 250,
	} {
		assert.Equal(t, want, effectiveLimit(in), "limit %d", in)
	}
}

func isDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// TestCountingContext_CancelsOnLastTick verifies the context stays open for
// limit-1 calls to Done and closes on the limit-th.
func TestCountingContext_CancelsOnLastTick(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		limit := rapid.IntRange(1, 200).Draw(rt, "limit")
		ctx, cancel := newCountingContext(limit)
		defer cancel()
		for i := 1; i < limit; i++ {
			if isDone(ctx) {
				rt.Fatalf("closed after %d of %d ticks", i, limit)
			}
		}
		assert.True(rt, isDone(ctx))
		assert.ErrorIs(rt, ctx.Err(), context.Canceled)
	})
}

func TestNewSandboxedState_Globals(t *testing.T) {
	L := NewSandboxedState(0)
	defer L.Close()
	for name, want := range map[string]lua.LValueType{
		"os":             lua.LTNil,
		"io":             lua.LTNil,
		"debug":          lua.LTNil,
		"dofile":         lua.LTNil,
		"loadfile":       lua.LTNil,
		"load":           lua.LTNil,
		"collectgarbage": lua.LTNil,
		"require":        lua.LTNil,
		"math":           lua.LTTable,
		"string":         lua.LTTable,
		"table":          lua.LTTable,
		"ipairs":         lua.LTFunction,
		"pcall":          lua.LTFunction,
	} {
		assert.Equal(t, want, L.GetGlobal(name).Type(), name)
	}
	assert.NotNil(t, L.Context())
}

const spin = `function spin(n) for i = 1, n do end end`

func TestWithLimit_FreshBudgetPerCall(t *testing.T) {
	L := NewSandboxedState(0)
	defer L.Close()
	require.NoError(t, L.DoString(spin))

	err := withLimit(L, 100, func() error { return L.DoString(`spin(1000000)`) })
	assert.Error(t, err)
	assert.Nil(t, L.Context(), "context must be removed after the call")

	for i := 0; i < 5; i++ {
		err := withLimit(L, 100, func() error { return L.DoString(`spin(3)`) })
		require.NoError(t, err, "call %d", i)
		assert.Nil(t, L.Context())
	}
}

func TestWithLimit_PassesThroughError(t *testing.T) {
	L := NewSandboxedState(0)
	defer L.Close()
	sentinel := errors.New("boom")
	err := withLimit(L, 0, func() error {
		assert.NotNil(t, L.Context())
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

// TestWithLimit_RecoversAfterExhaustion verifies that for any budget, a
// runaway call fails and the next bounded call on the same state succeeds.
func TestWithLimit_RecoversAfterExhaustion(t *testing.T) {
	L := NewSandboxedState(0)
	defer L.Close()
	require.NoError(t, L.DoString(spin))
	rapid.Check(t, func(rt *rapid.T) {
		limit := rapid.IntRange(1, 500).Draw(rt, "limit")
		err := withLimit(L, limit, func() error { return L.DoString(`while true do end`) })
		require.Error(rt, err)
		err = withLimit(L, 0, func() error { return L.DoString(`spin(10)`) })
		require.NoError(rt, err)
	})
}
