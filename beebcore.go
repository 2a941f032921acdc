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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/beebcore/debugger"
	"github.com/jetsetilly/beebcore/debugger/govern"
	"github.com/jetsetilly/beebcore/debugger/terminal"
	"github.com/jetsetilly/beebcore/debugger/terminal/colorterm"
	"github.com/jetsetilly/beebcore/debugger/terminal/plainterm"
	"github.com/jetsetilly/beebcore/hardware"
	"github.com/jetsetilly/beebcore/hardware/instance"
	"github.com/jetsetilly/beebcore/hardware/models"
	"github.com/jetsetilly/beebcore/logger"
	"github.com/jetsetilly/beebcore/modalflag"
	"github.com/jetsetilly/beebcore/paths"
	"github.com/jetsetilly/beebcore/performance"
	"github.com/jetsetilly/beebcore/prefs"
	"github.com/jetsetilly/beebcore/romloader"
	"github.com/jetsetilly/beebcore/script"
	"github.com/jetsetilly/beebcore/statsview"
	"github.com/jetsetilly/beebcore/version"
)

func main() {
	if err := launch(os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
}

func launch(args []string, output io.Writer) error {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "DEBUG":
		err = debug(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		return fmt.Errorf("%s mode: %w", md, err)
	}

	return nil
}

// flags common to all modes that create a machine.
type machineFlags struct {
	model     *string
	os        *string
	roms      *string
	prefs     *string
	log       *bool
	statsview *bool
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	f := &machineFlags{
		model: md.AddString("model", "", fmt.Sprintf("machine model: %s", strings.Join(models.Names(), ", "))),
		os:    md.AddString("os", "", "OS image. replaces the model's OS image"),
		roms:  md.AddString("rom", "", "comma separated list of paged ROMs. replaces the model's ROMs"),
		prefs: md.AddString("prefs", "", "preferences for this session. for example: machine.cyclesPerBurst::20000"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

func (f *machineFlags) create(label instance.Label, output io.Writer) (*hardware.Machine, error) {
	if *f.log {
		logger.SetEcho(output)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(output)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}
	ins, err := instance.NewInstance(label, nil)
	if *f.prefs != "" {
		if s := prefs.PopCommandLineStack(); s != "" {
			logger.Logf(logger.Allow, "beebcore", "unused prefs: %s", s)
		}
	}
	if err != nil {
		return nil, err
	}

	name := *f.model
	if name == "" {
		name = ins.Prefs.Model.Get().(string)
	}
	model, err := models.Find(name)
	if err != nil {
		return nil, err
	}

	var roms []string
	if *f.roms != "" {
		roms = strings.Split(*f.roms, ",")
	}

	images, err := romloader.LoadImages(paths.ResourcePath("roms"), model, *f.os, roms)
	if err != nil {
		return nil, err
	}

	return hardware.NewMachine(ins, model, images, nil)
}

// headlessHost implements script.Host for the RUN mode.
type headlessHost struct {
	output io.Writer
}

func (h headlessHost) Mode() govern.Mode {
	return govern.ModeRun
}

func (h headlessHost) Print(s string) {
	fmt.Fprintln(h.output, s)
}

func (h headlessHost) AddBreakpoint(uint16) error {
	return fmt.Errorf("breakpoints: %w in RUN mode", script.NotAvailable)
}

func (h headlessHost) Command(string) error {
	return fmt.Errorf("debugger commands: %w in RUN mode", script.NotAvailable)
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("Without -cycles the emulation runs until interrupted, unless a script is\nspecified, in which case the emulation runs only if the script installs\nan onstep function.")

	flags := addMachineFlags(md)
	cycles := md.AddInt("cycles", 0, "number of CPU cycles to run for")
	scriptFile := md.AddString("script", "", "Lua script to run before the emulation starts")
	memvizFile := md.AddString("memviz", "", "write graphviz description of the CPU registers to file on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments")
	}

	m, err := flags.create(instance.Main, output)
	if err != nil {
		return err
	}

	var eng *script.Engine
	if *scriptFile != "" {
		eng = script.NewEngine(m, headlessHost{output: output})
		defer eng.Close()
		m.CPU.SetInstructionHook(eng.InstructionHook)
		if err := eng.RunFile(*scriptFile); err != nil {
			return err
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	switch {
	case *cycles > 0:
		m.RunForCycles(*cycles)
	case eng == nil || eng.HasHook():
		_, err := m.Run(func() (govern.State, error) {
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}
			if m.CPU.Halted() {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
		if err != nil {
			return err
		}
	}

	if eng != nil {
		if err := eng.Err(); err != nil {
			return err
		}
	}

	fmt.Fprintln(output, m.CPU)

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		debugger.WriteMemviz(f, m.CPU)
		return f.Close()
	}

	return nil
}

func debug(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addMachineFlags(md)
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	initScript := md.AddString("script", "", "Lua script to run on debugger start")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments")
	}

	m, err := flags.create(instance.Main, output)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, output)
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	dbg, err := debugger.NewDebugger(m, term)
	if err != nil {
		return err
	}

	err = dbg.Start(*initScript)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional s, m, or h suffix)")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, BOTH, NONE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments")
	}

	m, err := flags.create(instance.Main, output)
	if err != nil {
		return err
	}

	check := func() error {
		_, err := performance.Check(output, m, *duration)
		return err
	}

	switch strings.ToUpper(*profile) {
	case "NONE":
		return check()
	case "CPU":
		return performance.ProfileCPU("beebcore_cpu.profile", check)
	case "MEM":
		if err := check(); err != nil {
			return err
		}
		return performance.ProfileMem("beebcore_mem.profile")
	case "BOTH":
		if err := performance.ProfileCPU("beebcore_cpu.profile", check); err != nil {
			return err
		}
		return performance.ProfileMem("beebcore_mem.profile")
	}

	return fmt.Errorf("unknown profile type (%s)", *profile)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
