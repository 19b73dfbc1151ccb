package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/oledfont/internal/settings"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'oledfont'
func tracer() tracing.Trace {
	return tracing.Select("oledfont")
}

// traceKeys are the trace keys of all packages of this module.
var traceKeys = []string{"oledfont", "oledfont.extract", "oledfont.table"}

func main() {
	initDisplay()

	commando.
		SetExecutableName("oledfont-tools").
		SetVersion("v0.1.0").
		SetDescription("Convert the byte-array fonts of oledfont.h into typed glyph tables.")

	commando.
		Register("convert").
		SetDescription("Read a font source and write a header with typed 6x8, 8x16 and 16x16 glyph tables.").
		SetShortDescription("convert a font source").
		AddFlag("source,s", "font source file (default from environment or ../App/oledfont.h)", commando.String, "-").
		AddFlag("target,o", "generated header (default from environment or ../App/oledfont_new.h)", commando.String, "-").
		AddFlag("encoding,e", "charset of source and target, e.g. utf-8, gbk", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "-").
		AddFlag("drops,d", "list dropped candidates", commando.Bool, nil).
		SetAction(runConvertCommand)

	commando.
		Register("list").
		SetDescription("Extract the glyph tables of a font source and print a summary, without writing anything.").
		SetShortDescription("summarize a font source").
		AddFlag("source,s", "font source file (default from environment or ../App/oledfont.h)", commando.String, "-").
		AddFlag("encoding,e", "charset of the source, e.g. utf-8, gbk", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "-").
		AddFlag("drops,d", "list dropped candidates", commando.Bool, nil).
		SetAction(runListCommand)

	commando.
		Register("browse").
		SetDescription("Extract the glyph tables of a font source and inspect single glyphs interactively.").
		SetShortDescription("browse glyph tables").
		AddFlag("source,s", "font source file (default from environment or ../App/oledfont.h)", commando.String, "-").
		AddFlag("encoding,e", "charset of the source, e.g. utf-8, gbk", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "-").
		SetAction(runBrowseCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initTracing routes all trace keys to the Go logger and sets their level.
func initTracing(level string) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	case "error":
	default:
		fatalf("invalid trace level: %s", level)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	tracer().Debugf("trace level is %s", level)
}

// resolveSettings overlays command-line flags onto the settings from the
// environment. A flag value of "-" means the flag has not been set.
func resolveSettings(flags map[string]commando.FlagValue) settings.Settings {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	s := settings.Load(wd)
	overlay := func(name string, value *string) {
		flag, ok := flags[name]
		if !ok {
			return
		}
		if v := mustFlagString(flag, name); v != "-" && v != "" {
			*value = v
		}
	}
	overlay("source", &s.Source)
	overlay("target", &s.Target)
	overlay("encoding", &s.Encoding)
	overlay("trace", &s.Trace)
	initTracing(s.Trace)
	return s
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "oledfont-tools: "+format+"\n", args...)
	os.Exit(1)
}
