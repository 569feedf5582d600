// This file is part of Gopher6526.
//
// Gopher6526 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6526 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6526.  If not, see <https://www.gnu.org/licenses/>.

package scripting

import (
	"context"
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/gopher6526/hardware/cia"
	"github.com/jetsetilly/gopher6526/hardware/cia/registers"
	"github.com/jetsetilly/gopher6526/logger"
)

// Script is a Lua environment bound to a CIA instance.
type Script struct {
	L      *lua.LState
	cia    *cia.CIA
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print() function is written to output.
func NewScript(c *cia.CIA, output io.Writer) *Script {
	scr := &Script{
		L:      lua.NewState(),
		cia:    c,
		output: output,
	}

	tb := scr.L.SetFuncs(scr.L.NewTable(), map[string]lua.LGFunction{
		"read":    scr.read,
		"write":   scr.write,
		"peek":    scr.peek,
		"step":    scr.step,
		"pin":     scr.pin,
		"setpin":  scr.setpin,
		"port":    scr.port,
		"setport": scr.setport,
		"irq":     scr.irq,
		"reset":   scr.reset,
		"cycles":  scr.cycles,
	})
	scr.L.SetGlobal("cia", tb)
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the named script. The script is stopped if the context is
// cancelled.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.L.SetContext(ctx)
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	return nil
}

// RunString runs the script in the string.
func (scr *Script) RunString(ctx context.Context, script string) error {
	scr.L.SetContext(ctx)
	if err := scr.L.DoString(script); err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	return nil
}

// register argument n is either an address or a register name.
func (scr *Script) register(n int) registers.Register {
	v := scr.L.CheckAny(n)

	var reg registers.Register
	var err error

	switch v.Type() {
	case lua.LTNumber:
		reg, err = registers.FromAddress(int(lua.LVAsNumber(v)))
	case lua.LTString:
		reg, err = registers.Parse(lua.LVAsString(v))
	default:
		scr.L.ArgError(n, "register address or name expected")
	}

	if err != nil {
		scr.L.ArgError(n, err.Error())
	}

	return reg
}

func (scr *Script) data(n int) uint8 {
	v := scr.L.CheckInt(n)
	if v < 0 || v > 0xff {
		scr.L.ArgError(n, fmt.Sprintf("value out of range (%d)", v))
	}
	return uint8(v)
}

func (scr *Script) read(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cia.Read(scr.register(1))))
	return 1
}

func (scr *Script) write(L *lua.LState) int {
	scr.cia.Write(scr.register(1), scr.data(2))
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cia.Peek(scr.register(1))))
	return 1
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 0 {
		L.ArgError(1, "number of cycles must not be negative")
	}
	scr.cia.Idle(n)
	return 0
}

func (scr *Script) pin(L *lua.LState) int {
	p, err := cia.ParsePin(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	l, err := scr.cia.Pin(p)
	if err != nil {
		L.ArgError(1, err.Error())
	}
	L.Push(lua.LBool(l))
	return 1
}

func (scr *Script) setpin(L *lua.LState) int {
	p, err := cia.ParsePin(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}

	// levels can be given as a boolean or as 0 and 1
	var l bool
	switch v := L.CheckAny(2); v.Type() {
	case lua.LTNumber:
		l = lua.LVAsNumber(v) != 0
	default:
		l = lua.LVAsBool(v)
	}

	if err := scr.cia.SetPin(p, l); err != nil {
		L.ArgError(1, err.Error())
	}
	return 0
}

func (scr *Script) port(L *lua.LState) int {
	p, err := cia.ParsePort(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	v, _ := scr.cia.Port(p)
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setport(L *lua.LState) int {
	p, err := cia.ParsePort(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	_ = scr.cia.SetPort(p, scr.data(2))
	return 0
}

func (scr *Script) irq(L *lua.LState) int {
	L.Push(lua.LBool(scr.cia.IRQ()))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	scr.cia.Reset()
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.cia.Cycles))
	return 1
}

func (scr *Script) args(L *lua.LState) string {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.Get(i).String())
	}
	return strings.Join(s, "\t")
}

func (scr *Script) print(L *lua.LState) int {
	fmt.Fprintln(scr.output, scr.args(L))
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", scr.args(L))
	return 0
}
