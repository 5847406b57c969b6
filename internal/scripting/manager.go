package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// GlobalKey is the reserved VM key for shared scripts loaded via LoadGlobal.
// CallHook falls back to this VM when no zone VM is found. LoadTree loads it
// from a subdirectory of the same name.
const GlobalKey = "global"

// CoherenceHook is the Lua global called by CheckCoherence. It receives the
// profile as a table and returns an array of warning strings.
const CoherenceHook = "check_coherence"

type vm struct {
	mu sync.Mutex
	L  *lua.LState
}

func (v *vm) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.L.Close()
}

// Manager owns one sandboxed LState per cultural zone plus an optional
// global VM, and exposes hook dispatch.
//
// Manager is safe for concurrent use. Each VM is single-threaded; calls into
// the same VM are serialized while different VMs run concurrently.
type Manager struct {
	mu        sync.RWMutex
	vms       map[string]*vm
	instLimit int
	logger    *zap.Logger
}

// NewManager creates a Manager whose loads and hook calls are each limited
// to instLimit opcodes.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit. A nil logger
// disables logging.
// Postcondition: Returns a non-nil Manager with no VMs.
func NewManager(instLimit int, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{vms: make(map[string]*vm), instLimit: instLimit, logger: logger}
}

// LoadZone creates a sandboxed VM for zone, registers the npc.* helpers,
// then executes every *.lua file in scriptDir in lexicographic order.
//
// Precondition: zone must be non-empty; scriptDir must be a readable directory.
// Postcondition: the zone VM replaces any previous one; returns error on Lua
// load failure.
func (m *Manager) LoadZone(zone, scriptDir string) error {
	if zone == "" {
		return fmt.Errorf("scripting: zone must not be empty")
	}
	return m.loadInto(zone, scriptDir)
}

// LoadGlobal creates the global VM consulted for zones without their own.
//
// Precondition: scriptDir must be a readable directory.
func (m *Manager) LoadGlobal(scriptDir string) error {
	return m.loadInto(GlobalKey, scriptDir)
}

// LoadTree loads every subdirectory of root as a VM keyed by the
// subdirectory name. The subdirectory named GlobalKey becomes the global VM.
// Files directly under root are ignored.
//
// Precondition: root must be a readable directory.
func (m *Manager) LoadTree(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("scripting: reading script root %q: %w", root, err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if err := m.loadInto(e.Name(), filepath.Join(root, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) loadInto(key, scriptDir string) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, key, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L, cancel := NewSandboxedState(m.instLimit)
	m.RegisterModules(L, key)
	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return fmt.Errorf("scripting: loading %q for %q: %w", path, key, err)
		}
	}
	cancel()
	L.RemoveContext()

	m.mu.Lock()
	old := m.vms[key]
	m.vms[key] = &vm{L: L}
	m.mu.Unlock()
	if old != nil {
		old.close()
	}

	m.logger.Debug("scripting: VM loaded", zap.String("vm", key), zap.Int("files", len(luaFiles)))
	return nil
}

// Keys returns the loaded VM keys in sorted order.
func (m *Manager) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.vms))
	for k := range m.vms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CallHook calls the named Lua global in zone's VM, falling back to the
// global VM. Arguments are converted with ToLValue and the result is passed
// to read while the VM is still held. Returns (false, nil) if no VM exists
// or the hook is undefined. Lua runtime errors, including an exhausted
// instruction budget, are logged at Warn and reported as (false, nil).
//
// Postcondition: a non-nil error is returned only for unconvertible args.
func (m *Manager) CallHook(zone, hook string, read func(lua.LValue), args ...any) (bool, error) {
	m.mu.RLock()
	v, ok := m.vms[zone]
	if !ok {
		v = m.vms[GlobalKey]
	}
	m.mu.RUnlock()

	if v == nil {
		m.logger.Debug("scripting: no VM for zone", zap.String("zone", zone), zap.String("hook", hook))
		return false, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	L := v.L

	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return false, nil
	}

	largs := make([]lua.LValue, 0, len(args))
	for i, a := range args {
		lv, err := ToLValue(L, a)
		if err != nil {
			return false, fmt.Errorf("scripting: %s arg %d: %w", hook, i, err)
		}
		largs = append(largs, lv)
	}

	cancel := arm(L, m.instLimit)
	defer func() {
		cancel()
		L.RemoveContext()
	}()

	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, largs...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("zone", zone),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return false, nil
	}

	ret := L.Get(-1)
	L.Pop(1)
	if read != nil {
		read(ret)
	}
	return true, nil
}

// CheckCoherence runs the check_coherence hook for zone against profile and
// returns the warnings it reports. A zone with its own VM runs its hook and
// then the global one; other zones run only the global hook. Missing VMs or
// hooks yield no warnings.
func (m *Manager) CheckCoherence(zone string, profile map[string]any) ([]string, error) {
	var warnings []string
	collect := func(v lua.LValue) { warnings = append(warnings, StringList(v)...) }

	if _, err := m.CallHook(zone, CoherenceHook, collect, profile); err != nil {
		return nil, err
	}
	if zone != GlobalKey && m.has(zone) && m.has(GlobalKey) {
		if _, err := m.CallHook(GlobalKey, CoherenceHook, collect, profile); err != nil {
			return nil, err
		}
	}
	return warnings, nil
}

func (m *Manager) has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.vms[key]
	return ok
}

// Close releases every VM.
func (m *Manager) Close() {
	m.mu.Lock()
	vms := m.vms
	m.vms = make(map[string]*vm)
	m.mu.Unlock()
	for _, v := range vms {
		v.close()
	}
}
