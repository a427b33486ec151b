package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontpreview"
	"github.com/npillmayer/fontpreview/fclist"
	"github.com/npillmayer/fontpreview/favorites"
	"github.com/npillmayer/fontpreview/ot"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontpreview'
func tracer() tracing.Trace {
	return tracing.Select("fontpreview")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.fontpreview": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	pattern := flag.String("filter", "", "Initial filter for the font listing")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)  // will set the correct level later
	pterm.Info.Println("Welcome to the font preview CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("fp > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	intp.favs = intp.store.Load()
	//
	// enumerate the fonts installed on this system
	intp.refreshFonts(*pattern)
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	store   favorites.Store
	favs    favorites.Set
	fonts   []fclist.FontInfo // last enumeration result, indexed 1-based by users
	current *selectedFont
	cmp     fontpreview.CompareSet
}

// selectedFont is the font a `use` command has put in focus, with its parsed
// form and codepoint coverage memoized for the duration of the selection.
type selectedFont struct {
	info     fclist.FontInfo
	otf      *ot.Font
	coverage ot.CodepointSet
}

func (intp *Intp) String() string {
	if intp == nil || intp.current == nil {
		return "()"
	}
	return fmt.Sprintf("( font=%s )", intp.current.info.DisplayName())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, args := parseCommand(line)
		f, ok := commandFn[cmd]
		if !ok {
			pterm.Error.Printf("unknown command: %s\n", cmd)
			continue
		}
		err, quit := f(intp, args)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func parseCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	return strings.ToLower(fields[0]), fields[1:]
}

var commandFn = map[string]func(*Intp, []string) (error, bool){
	"quit":    quitOp,
	"help":    helpOp,
	"list":    listOp,
	"use":     useOp,
	"fav":     favOp,
	"favs":    favsOp,
	"info":    infoOp,
	"blocks":  blocksOp,
	"langs":   langsOp,
	"lookup":  lookupOp,
	"compare": compareOp,
}

func quitOp(intp *Intp, args []string) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}
