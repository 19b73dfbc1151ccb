package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvSource, EnvTarget, EnvEncoding, EnvTrace} {
		t.Setenv(key, "")
	}
}

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "oledfont")
	defer teardown()
	clearEnv(t)
	//
	s := Load(t.TempDir())
	assert.Equal(t, Settings{
		Source:   DefaultSource,
		Target:   DefaultTarget,
		Encoding: DefaultEncoding,
		Trace:    DefaultTrace,
	}, s)
}

func TestLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "oledfont")
	defer teardown()
	clearEnv(t)
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("OLEDFONT_SOURCE=env.h\nOLEDFONT_TARGET=env_new.h\nOLEDFONT_ENCODING=gbk\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"),
		[]byte("OLEDFONT_TARGET=local_new.h\n"), 0o644))
	t.Setenv(EnvEncoding, "gb18030")

	s := Load(dir)
	assert.Equal(t, "env.h", s.Source, ".env applies where nothing else is set")
	assert.Equal(t, "local_new.h", s.Target, ".env.local wins over .env")
	assert.Equal(t, "gb18030", s.Encoding, "process environment wins over env-files")
	assert.Equal(t, DefaultTrace, s.Trace)
}
