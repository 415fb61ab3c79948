// Package window describes the fixed set of shell windows: their kinds,
// geometry, chrome and the handle the orchestrator drives them through.
package window

import "strings"

// Kind is the closed set of windows the shell can create.
type Kind int

const (
	Splash Kind = iota
	Setup
	Launcher
	Word
	Excel
	PowerPoint
	Access
	Outlook
)

// Apps lists the office application kinds in launcher order.
var Apps = []Kind{Word, Excel, PowerPoint, Access, Outlook}

func (k Kind) String() string {
	switch k {
	case Splash:
		return "splash"
	case Setup:
		return "setup"
	case Launcher:
		return "launcher"
	case Word:
		return "word"
	case Excel:
		return "excel"
	case PowerPoint:
		return "powerpoint"
	case Access:
		return "access"
	case Outlook:
		return "outlook"
	default:
		return "unknown"
	}
}

// IsApp reports whether k is one of the office applications.
func (k Kind) IsApp() bool {
	return k >= Word && k <= Outlook
}

// ParseApp resolves an application name. "ppt" is accepted for PowerPoint.
func ParseApp(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "word":
		return Word, true
	case "excel":
		return Excel, true
	case "powerpoint", "ppt":
		return PowerPoint, true
	case "access":
		return Access, true
	case "outlook":
		return Outlook, true
	}
	return 0, false
}

// Handle is the part of a native window the orchestrator needs.
// fyne.Window satisfies it.
type Handle interface {
	Show()
	Close()
	RequestFocus()
	SetOnClosed(func())
}
