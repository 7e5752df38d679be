package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/yahtzee/internal/game/dice"
	"github.com/cory-johannsen/yahtzee/internal/game/scoring"
)

// RegisterModules registers the engine.* Lua table into L:
//
//	engine.score(name, hand) -> int   (raises on unknown rule or bad hand)
//	engine.rules()           -> {name, ...} in registration order
//	engine.sum(hand)         -> int
//	engine.count(hand, face) -> int
//	engine.log.debug/info/warn(msg)
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (e *Engine) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetFuncs(engine, map[string]lua.LGFunction{
		"score": e.luaScore,
		"rules": e.luaRules,
		"sum":   luaSum,
		"count": luaCount,
	})

	log := L.NewTable()
	L.SetFuncs(log, map[string]lua.LGFunction{
		"debug": e.luaLog(e.logger.Debug),
		"info":  e.luaLog(e.logger.Info),
		"warn":  e.luaLog(e.logger.Warn),
	})
	L.SetField(engine, "log", log)

	L.SetGlobal("engine", engine)
}

func (e *Engine) luaScore(L *lua.LState) int {
	name := L.CheckString(1)
	h := checkHand(L, 2)
	score, err := e.rules.Evaluate(name, h)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LNumber(score))
	return 1
}

func (e *Engine) luaRules(L *lua.LState) int {
	t := L.NewTable()
	for _, name := range e.rules.Names() {
		t.Append(lua.LString(name))
	}
	L.Push(t)
	return 1
}

func luaSum(L *lua.LState) int {
	L.Push(lua.LNumber(scoring.Sum(checkHand(L, 1))))
	return 1
}

func luaCount(L *lua.LState) int {
	h := checkHand(L, 1)
	face := L.CheckInt(2)
	L.Push(lua.LNumber(scoring.CountOf(h, face)))
	return 1
}

func (e *Engine) luaLog(write func(string, ...zap.Field)) lua.LGFunction {
	return func(L *lua.LState) int {
		write(L.CheckString(1), zap.String("source", "lua"))
		return 0
	}
}

// checkHand reads argument n as a Lua array of five dice, raising a Lua
// argument error when it is not a valid hand.
func checkHand(L *lua.LState, n int) dice.Hand {
	t := L.CheckTable(n)
	values := make([]int, 0, dice.HandSize)
	for i := 1; i <= t.Len(); i++ {
		v, ok := t.RawGetInt(i).(lua.LNumber)
		if !ok || lua.LNumber(int(v)) != v {
			L.ArgError(n, "hand must hold integers")
			return dice.Hand{}
		}
		values = append(values, int(v))
	}
	h, err := dice.NewHand(values...)
	if err != nil {
		L.ArgError(n, err.Error())
		return dice.Hand{}
	}
	return h
}

// handTable converts h into a Lua array.
func handTable(L *lua.LState, h dice.Hand) *lua.LTable {
	t := L.CreateTable(dice.HandSize, 0)
	for _, d := range h {
		t.Append(lua.LNumber(d))
	}
	return t
}
