package window

type Size struct {
	Width  float32
	Height float32
}

// Spec is the fixed geometry and chrome of a window kind.
type Spec struct {
	Kind        Kind
	Title       string
	Size        Size
	Resizable   bool
	Frameless   bool
	MenuVisible bool
	Icon        string
}

const shellTitle = "Microsoft Office 97"

var specs = map[Kind]Spec{
	Splash:     {Kind: Splash, Title: shellTitle + " Setup", Size: Size{640, 480}, Frameless: true, Icon: "office"},
	Setup:      {Kind: Setup, Title: shellTitle + " Setup", Size: Size{560, 480}, Icon: "office"},
	Launcher:   {Kind: Launcher, Title: shellTitle, Size: Size{420, 280}, Icon: "office"},
	Word:       {Kind: Word, Title: "Microsoft Word", Size: Size{900, 700}, Resizable: true, Icon: "word"},
	Excel:      {Kind: Excel, Title: "Microsoft Excel", Size: Size{1000, 720}, Resizable: true, Icon: "excel"},
	PowerPoint: {Kind: PowerPoint, Title: "Microsoft PowerPoint", Size: Size{1000, 720}, Resizable: true, Icon: "powerpoint"},
	Access:     {Kind: Access, Title: "Microsoft Access", Size: Size{900, 680}, Resizable: true, Icon: "access"},
	Outlook:    {Kind: Outlook, Title: "Inbox - Microsoft Outlook", Size: Size{950, 720}, Resizable: true, Icon: "outlook"},
}

// LegacyLauncher is the original compact launcher layout.
var LegacyLauncher = Spec{Kind: Launcher, Title: shellTitle, Size: Size{320, 240}, Icon: "office"}

// SpecFor returns the table entry for k. Unknown kinds get the Word geometry
// with the generic shell title.
func SpecFor(k Kind) Spec {
	if s, ok := specs[k]; ok {
		return s
	}
	s := specs[Word]
	s.Kind = k
	s.Title = shellTitle
	s.Icon = "office"
	return s
}

// Table returns every spec in display order, including the legacy launcher.
func Table() []Spec {
	out := []Spec{specs[Splash], specs[Setup], LegacyLauncher, specs[Launcher]}
	for _, k := range Apps {
		out = append(out, specs[k])
	}
	return out
}
