package scripting

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the npc.* helper table into L.
//
//	npc.log(msg)           debug-logs msg with the VM key
//	npc.has(list, value)   case-insensitive array membership
//	npc.between(v, lo, hi) inclusive range test
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: the npc global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState, key string) {
	mod := L.NewTable()
	L.SetField(mod, "log", L.NewFunction(func(L *lua.LState) int {
		m.logger.Debug("lua", zap.String("vm", key), zap.String("message", L.CheckString(1)))
		return 0
	}))
	L.SetField(mod, "has", L.NewFunction(luaHas))
	L.SetField(mod, "between", L.NewFunction(func(L *lua.LState) int {
		v, lo, hi := L.CheckNumber(1), L.CheckNumber(2), L.CheckNumber(3)
		L.Push(lua.LBool(v >= lo && v <= hi))
		return 1
	}))
	L.SetGlobal("npc", mod)
}

func luaHas(L *lua.LState) int {
	want := strings.ToLower(L.CheckString(2))
	found := false
	if t, ok := L.Get(1).(*lua.LTable); ok {
		t.ForEach(func(_, v lua.LValue) {
			if s, ok := v.(lua.LString); ok && strings.ToLower(string(s)) == want {
				found = true
			}
		})
	}
	L.Push(lua.LBool(found))
	return 1
}
