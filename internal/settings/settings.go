package settings

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'oledfont'
func tracer() tracing.Trace {
	return tracing.Select("oledfont")
}

// Environment variables recognized.
const (
	EnvSource   = "OLEDFONT_SOURCE"
	EnvTarget   = "OLEDFONT_TARGET"
	EnvEncoding = "OLEDFONT_ENCODING"
	EnvTrace    = "OLEDFONT_TRACE"
)

// Defaults follow the firmware project layout, where the tools live in a
// sibling folder of App/.
const (
	DefaultSource   = "../App/oledfont.h"
	DefaultTarget   = "../App/oledfont_new.h"
	DefaultEncoding = "utf-8"
	DefaultTrace    = "Info"
)

// Settings configure a conversion run.
type Settings struct {
	Source   string // path of the font source
	Target   string // path of the generated header
	Encoding string // charset of source and target
	Trace    string // trace level, one of Debug, Info, Error
}

// Load resolves settings from the process environment, then from env-files
// .env.local and .env in dir, then from built-in defaults. The first layer
// defining a variable wins. Env-files are optional.
func Load(dir string) Settings {
	layers := []map[string]string{}
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		vars, err := godotenv.Read(path)
		if err != nil {
			tracer().Errorf("cannot read %s: %v", path, err)
			continue
		}
		tracer().Debugf("loaded settings from %s", path)
		layers = append(layers, vars)
	}
	lookup := func(key, def string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		for _, vars := range layers {
			if v := vars[key]; v != "" {
				return v
			}
		}
		return def
	}
	return Settings{
		Source:   lookup(EnvSource, DefaultSource),
		Target:   lookup(EnvTarget, DefaultTarget),
		Encoding: lookup(EnvEncoding, DefaultEncoding),
		Trace:    lookup(EnvTrace, DefaultTrace),
	}
}
