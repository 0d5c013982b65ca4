package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontfallback"
	"github.com/npillmayer/fontfallback/fallback"
	"github.com/npillmayer/fontfallback/fontdir"
	"github.com/npillmayer/fontfallback/fontsxml"
	"github.com/npillmayer/fontfallback/graphemes"
	"github.com/npillmayer/fontfallback/internal/covcache"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'fontfallback.tools'
func tracer() tracing.Trace {
	return tracing.Select("fontfallback.tools")
}

// tracing keys of the fontfallback packages
var traceKeys = []string{
	"fontfallback",
	"fontfallback.tools",
	"fontfallback.chain",
	"fontfallback.fontsxml",
	"fontfallback.fonts",
	"fontfallback.coverage",
	"fontfallback.cache",
}

func main() {
	initDisplay()
	initTracing()

	commando.
		SetExecutableName("fallback-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for testing font fallback chains and text itemization.")

	commando.
		Register("itemize").
		SetDescription("Itemize text into runs of font families of a fallback chain.").
		SetShortDescription("itemize text").
		AddArgument("text...", "text to itemize (quote text containing spaces)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0627,U+0644)", commando.String, "-").
		AddFlag("lang,l", "preferred language (BCP 47, e.g. ja, ko, zh-Hans)", commando.String, "-").
		AddFlag("fonts,f", "root directory of font files", commando.String, ".").
		AddFlag("manifest,m", "font manifest (Android fonts.xml format)", commando.String, "fonts.xml").
		AddFlag("head,H", "named family heading the chain", commando.String, "sans-serif").
		AddFlag("cache", "coverage cache database", commando.String, "-").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runItemizeCommand)

	commando.
		Register("chain").
		SetDescription("Print the families of a fallback chain and statistics about its construction.").
		SetShortDescription("describe chain").
		AddFlag("fonts,f", "root directory of font files", commando.String, ".").
		AddFlag("manifest,m", "font manifest (Android fonts.xml format)", commando.String, "fonts.xml").
		AddFlag("head,H", "named family heading the chain", commando.String, "sans-serif").
		AddFlag("cache", "coverage cache database", commando.String, "-").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Info").
		SetAction(runChainCommand)

	commando.
		Register("graphemes").
		SetDescription("Split text into grapheme clusters.").
		SetShortDescription("grapheme clusters").
		AddArgument("text...", "text to segment (quote text containing spaces)", "").
		AddFlag("codepoints,c", "codepoints instead of text (comma/space separated, e.g. U+0627,U+0644)", commando.String, "-").
		SetAction(runGraphemesCommand)

	commando.
		Register("repl").
		SetDescription("Interactively itemize lines of text.").
		SetShortDescription("interactive mode").
		AddFlag("lang,l", "preferred language (BCP 47, e.g. ja, ko, zh-Hans)", commando.String, "-").
		AddFlag("fonts,f", "root directory of font files", commando.String, ".").
		AddFlag("manifest,m", "font manifest (Android fonts.xml format)", commando.String, "fonts.xml").
		AddFlag("head,H", "named family heading the chain", commando.String, "sans-serif").
		AddFlag("cache", "coverage cache database", commando.String, "-").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runREPLCommand)

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

func initTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = "Error"
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func setTraceLevel(flag commando.FlagValue) {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	var level tracing.TraceLevel
	switch s {
	case "Debug":
		level = tracing.LevelDebug
	case "Info":
		level = tracing.LevelInfo
	case "Error":
		level = tracing.LevelError
	default:
		fatalf("invalid trace level: %s", s)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

// --- Commands --------------------------------------------------------------

func runItemizeCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(flags["trace"])
	text, err := parseTextInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	lang, err := parseLanguage(flags["lang"])
	if err != nil {
		fatalf("%v", err)
	}
	chain, _, _ := mustLoadChain(flags)
	printSegments(fontfallback.Describe(chain, text, chain.Itemize(text, lang)))
}

func runChainCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(flags["trace"])
	chain, set, dir := mustLoadChain(flags)
	printChain(chain)
	selections, err := set.NamedChain(chain.Name())
	if err != nil {
		fatalf("%v", err)
	}
	printFontFiles(selections, dir)
}

func runGraphemesCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text, err := parseTextInput(args["text"], flags["codepoints"])
	if err != nil {
		fatalf("%v", err)
	}
	printClusters(graphemes.Clusters(text))
}

func runREPLCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setTraceLevel(flags["trace"])
	lang, err := parseLanguage(flags["lang"])
	if err != nil {
		fatalf("%v", err)
	}
	chain, _, _ := mustLoadChain(flags)
	intp, err := NewIntp(chain, lang)
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Info.Println("Welcome to the font fallback CLI")
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// --- Environment -----------------------------------------------------------

func mustLoadChain(flags map[string]commando.FlagValue) (*fallback.Chain, *fontsxml.Familyset, *fontdir.Directory) {
	root := mustFlagString(flags["fonts"], "fonts")
	dir, err := fontdir.Scan(root)
	if err != nil {
		fatalf("%v", err)
	}
	if path := mustFlagString(flags["cache"], "cache"); path != "-" && path != "" {
		cache, err := covcache.Open(path)
		if err != nil {
			fatalf("%v", err)
		}
		defer cache.Close()
		dir.UseCache(cache)
	}
	set, err := fontsxml.ParseFile(mustFlagString(flags["manifest"], "manifest"))
	if err != nil {
		fatalf("%v", err)
	}
	head := strings.TrimSpace(mustFlagString(flags["head"], "head"))
	chain, err := fontfallback.ChainFromManifest(set, dir, head)
	if err != nil {
		fatalf("%v", err)
	}
	return chain, set, dir
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "fallback-tools: "+format+"\n", args...)
	os.Exit(1)
}
