// This file is part of Beebcore.
//
// Beebcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Beebcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Beebcore.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/beebcore/debugger/govern"
	"github.com/jetsetilly/beebcore/hardware"
	"github.com/jetsetilly/beebcore/hardware/memory/bus"
	"github.com/jetsetilly/beebcore/logger"
	lua "github.com/yuin/gopher-lua"
)

// Host provides the services that sit outside the machine.
type Host interface {
	Mode() govern.Mode
	Print(s string)
	AddBreakpoint(addr uint16) error
	Command(input string) error
}

// NotAvailable is returned by Host implementations that do not support an
// operation.
var NotAvailable = errors.New("not available")

// Engine is a Lua interpreter bound to a machine.
type Engine struct {
	L       *lua.LState
	machine *hardware.Machine
	mem     bus.DebuggerBus
	host    Host

	onStep *lua.LFunction

	// the onstep function is being called. the machine must not be run
	// from inside the hook
	inHook bool

	// the most recent error raised by the onstep function
	hookErr error
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(machine *hardware.Machine, host Host) *Engine {
	e := &Engine{
		L:       lua.NewState(),
		machine: machine,
		mem:     machine.Mem,
		host:    host,
	}

	for name, fn := range map[string]lua.LGFunction{
		"peek":       e.peek,
		"poke":       e.poke,
		"reg":        e.reg,
		"setreg":     e.setreg,
		"step":       e.step,
		"run":        e.run,
		"elapsed":    e.elapsed,
		"readstring": e.readstring,
		"findstring": e.findstring,
		"onstep":     e.setOnStep,
		"breakat":    e.breakat,
		"command":    e.command,
		"print":      e.print,
		"mode":       e.mode,
	} {
		e.L.SetGlobal(name, e.L.NewFunction(fn))
	}

	return e
}

// Close the Lua interpreter. The engine cannot be used after this.
func (e *Engine) Close() {
	e.L.Close()
}

// RunFile loads and runs the Lua script.
func (e *Engine) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := e.L.DoFile(filename); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunString runs the Lua source.
func (e *Engine) RunString(src string) error {
	if err := e.L.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// HasHook returns true if the script has installed an onstep function.
func (e *Engine) HasHook() bool {
	return e.onStep != nil
}

// Err returns and clears the most recent error from the onstep function.
func (e *Engine) Err() error {
	err := e.hookErr
	e.hookErr = nil
	return err
}

// InstructionHook calls the onstep function. It has the signature of
// cpu.InstructionHook.
//
// An error in the onstep function stops the emulation and removes the hook.
// The error is available through Err().
func (e *Engine) InstructionHook(pc uint16, opcode uint8) bool {
	if e.onStep == nil {
		return false
	}

	e.inHook = true
	defer func() {
		e.inHook = false
	}()

	err := e.L.CallByParam(lua.P{
		Fn:      e.onStep,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(pc), lua.LNumber(opcode))
	if err != nil {
		e.onStep = nil
		e.hookErr = fmt.Errorf("script: onstep: %w", err)
		return true
	}

	ret := e.L.Get(-1)
	e.L.Pop(1)
	return lua.LVAsBool(ret)
}

func (e *Engine) checkAddress(n int) uint16 {
	v := e.L.CheckInt(n)
	if v < 0 || v > 0xffff {
		e.L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func (e *Engine) checkByte(n int) uint8 {
	v := e.L.CheckInt(n)
	if v < 0 || v > 0xff {
		e.L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (e *Engine) peek(L *lua.LState) int {
	v, _ := e.mem.Peek(e.checkAddress(1))
	L.Push(lua.LNumber(v))
	return 1
}

func (e *Engine) poke(L *lua.LState) int {
	if err := e.mem.Poke(e.checkAddress(1), e.checkByte(2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (e *Engine) reg(L *lua.LState) int {
	mc := e.machine.CPU
	var v int
	switch strings.ToLower(L.CheckString(1)) {
	case "a":
		v = int(mc.A.Value())
	case "x":
		v = int(mc.X.Value())
	case "y":
		v = int(mc.Y.Value())
	case "sp":
		v = int(mc.SP.Value())
	case "p":
		v = int(mc.Status.Value(true))
	case "pc":
		v = int(mc.PC.Address())
	default:
		L.ArgError(1, "unknown register")
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (e *Engine) setreg(L *lua.LState) int {
	mc := e.machine.CPU
	name := strings.ToLower(L.CheckString(1))
	if name == "pc" {
		mc.PC.Load(e.checkAddress(2))
		return 0
	}

	v := e.checkByte(2)
	switch name {
	case "a":
		mc.A.Load(v)
	case "x":
		mc.X.Load(v)
	case "y":
		mc.Y.Load(v)
	case "sp":
		mc.SP.Load(v)
	case "p":
		mc.Status.FromValue(v)
	default:
		L.ArgError(1, "unknown register")
	}
	return 0
}

func (e *Engine) checkNotInHook(L *lua.LState) {
	if e.inHook {
		L.RaiseError("cannot run the machine from the onstep function")
	}
}

func (e *Engine) step(L *lua.LState) int {
	e.checkNotInHook(L)
	L.Push(lua.LBool(!e.machine.Step()))
	return 1
}

func (e *Engine) run(L *lua.LState) int {
	e.checkNotInHook(L)
	n := L.CheckInt(1)
	if n < 0 {
		L.ArgError(1, "negative cycle count")
	}
	L.Push(lua.LBool(e.machine.RunForCycles(n)))
	return 1
}

func (e *Engine) elapsed(L *lua.LState) int {
	L.Push(lua.LNumber(e.machine.Elapsed()))
	return 1
}

func (e *Engine) readstring(L *lua.LState) int {
	L.Push(lua.LString(e.machine.ReadString(e.checkAddress(1))))
	return 1
}

func (e *Engine) findstring(L *lua.LState) int {
	addr, ok := e.machine.FindString(L.CheckString(1), e.checkAddress(2))
	if !ok {
		L.Push(lua.LNil)
	} else {
		L.Push(lua.LNumber(addr))
	}
	return 1
}

func (e *Engine) setOnStep(L *lua.LState) int {
	if L.Get(1) == lua.LNil {
		e.onStep = nil
		return 0
	}
	e.onStep = L.CheckFunction(1)
	return 0
}

func (e *Engine) breakat(L *lua.LState) int {
	if err := e.host.AddBreakpoint(e.checkAddress(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (e *Engine) command(L *lua.LState) int {
	e.checkNotInHook(L)
	if err := e.host.Command(L.CheckString(1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (e *Engine) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	e.host.Print(strings.Join(s, "\t"))
	return 0
}

func (e *Engine) mode(L *lua.LState) int {
	L.Push(lua.LString(e.host.Mode().String()))
	return 1
}
