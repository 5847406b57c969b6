package scripting

import (
	"fmt"
	"sort"

	lua "github.com/yuin/gopher-lua"
)

// ToLValue converts a JSON-shaped Go value into a Lua value owned by L.
// Maps become tables keyed by string, slices become 1-based arrays.
func ToLValue(L *lua.LState, v any) (lua.LValue, error) {
	switch x := v.(type) {
	case nil:
		return lua.LNil, nil
	case bool:
		return lua.LBool(x), nil
	case string:
		return lua.LString(x), nil
	case int:
		return lua.LNumber(x), nil
	case int64:
		return lua.LNumber(x), nil
	case float64:
		return lua.LNumber(x), nil
	case []string:
		t := L.NewTable()
		for _, s := range x {
			t.Append(lua.LString(s))
		}
		return t, nil
	case []any:
		t := L.NewTable()
		for i, e := range x {
			lv, err := ToLValue(L, e)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			t.Append(lv)
		}
		return t, nil
	case map[string]any:
		t := L.NewTable()
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lv, err := ToLValue(L, x[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			t.RawSetString(k, lv)
		}
		return t, nil
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}

// StringList reads a Lua array of strings. Non-string elements are skipped;
// a single string is a one-element list and anything else is empty.
func StringList(v lua.LValue) []string {
	switch x := v.(type) {
	case lua.LString:
		return []string{string(x)}
	case *lua.LTable:
		var out []string
		n := x.Len()
		for i := 1; i <= n; i++ {
			if s, ok := x.RawGetInt(i).(lua.LString); ok && s != "" {
				out = append(out, string(s))
			}
		}
		return out
	}
	return nil
}
