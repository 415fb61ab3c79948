// Package startup turns the process command line into the immutable
// startup intent of the shell.
package startup

import (
	"github.com/spf13/pflag"

	"office97/internal/window"
)

// Flags are the shell switches. Unknown switches are ignored.
type Flags struct {
	NoSetup    bool
	Word       bool
	Excel      bool
	PowerPoint bool
	PPT        bool
	Access     bool
	Outlook    bool
}

// BindFlags registers the shell switches on fs.
func BindFlags(fs *pflag.FlagSet, f *Flags) {
	fs.BoolVar(&f.NoSetup, "no-setup", false, "Skip first-run setup and go to the launcher")
	fs.BoolVar(&f.Word, "word", false, "Launch Word directly")
	fs.BoolVar(&f.Excel, "excel", false, "Launch Excel directly")
	fs.BoolVar(&f.PowerPoint, "powerpoint", false, "Launch PowerPoint directly")
	fs.BoolVar(&f.PPT, "ppt", false, "Alias for --powerpoint")
	fs.BoolVar(&f.Access, "access", false, "Launch Access directly")
	fs.BoolVar(&f.Outlook, "outlook", false, "Launch Outlook directly")
}

// ParseArgs reads the switches out of args, tolerating anything it does
// not know. Switches count wherever they appear, including after "--".
func ParseArgs(args []string) Flags {
	var f Flags
	fs := pflag.NewFlagSet("office97", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	BindFlags(fs, &f)
	_ = fs.Parse(dropTerminators(args))
	return f
}

func dropTerminators(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "--" {
			out = append(out, arg)
		}
	}
	return out
}

// Merge sets every switch set in either f or other.
func (f Flags) Merge(other Flags) Flags {
	return Flags{
		NoSetup:    f.NoSetup || other.NoSetup,
		Word:       f.Word || other.Word,
		Excel:      f.Excel || other.Excel,
		PowerPoint: f.PowerPoint || other.PowerPoint,
		PPT:        f.PPT || other.PPT,
		Access:     f.Access || other.Access,
		Outlook:    f.Outlook || other.Outlook,
	}
}

// DirectApp returns the app to launch directly, in precedence order
// word, excel, powerpoint, access, outlook.
func (f Flags) DirectApp() (window.Kind, bool) {
	switch {
	case f.Word:
		return window.Word, true
	case f.Excel:
		return window.Excel, true
	case f.PowerPoint || f.PPT:
		return window.PowerPoint, true
	case f.Access:
		return window.Access, true
	case f.Outlook:
		return window.Outlook, true
	}
	return 0, false
}

// SkipsSetup reports whether the switches bypass first-run setup. Outlook
// is deliberately not a setup-skipping switch.
func (f Flags) SkipsSetup() bool {
	return f.NoSetup || f.Word || f.Excel || f.PowerPoint || f.PPT || f.Access
}

type Mode int

const (
	NormalLaunch Mode = iota
	FirstRunSetup
	DirectAppLaunch
)

func (m Mode) String() string {
	switch m {
	case FirstRunSetup:
		return "first-run-setup"
	case DirectAppLaunch:
		return "direct-app-launch"
	default:
		return "normal-launch"
	}
}

// Intent is decided once at launch.
type Intent struct {
	Mode Mode
	App  window.Kind
}

// Resolve combines the switches with the first-run decision.
func Resolve(f Flags, setupRequired bool) Intent {
	if app, ok := f.DirectApp(); ok {
		return Intent{Mode: DirectAppLaunch, App: app}
	}
	if setupRequired {
		return Intent{Mode: FirstRunSetup}
	}
	return Intent{Mode: NormalLaunch}
}
