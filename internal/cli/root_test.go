package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/distfile/pkg/errors"
	"github.com/arthur-debert/distfile/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and stdin, returning what was
// printed on stdout and stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(append([]string{"--color", "never"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeManifest(t *testing.T, dir string, entries ...map[string]interface{}) string {
	t.Helper()
	data, err := json.Marshal(map[string]interface{}{
		"name":  "acme/app",
		"extra": map[string]interface{}{"dist-installer-params": entries},
	})
	require.NoError(t, err)
	return testutil.CreateFile(t, dir, "composer.json", string(data))
}

func TestNoCommand(t *testing.T) {
	_, _, err := run(t, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestProcessCmd_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "config/app.ini.dist", "host={{Database host []|localhost}}\nuser={{user|=ENV[DB_USER]|root}}\n")
	file := filepath.Join(dir, "config", "app.ini")

	t.Setenv("DISTFILE_CLI_TEST_USER", "deploy")
	stdout, _, err := run(t, "", "process", file, "-n", "--env", "DB_USER=DISTFILE_CLI_TEST_USER")
	require.NoError(t, err)

	testutil.AssertFileContent(t, file, "host=localhost\nuser=deploy\n")
	assert.Contains(t, stdout, `Creating the "`+file+`" file`)
	assert.Contains(t, stdout, "1 file(s) written, 0 skipped")
	assert.NotContains(t, stdout, "<info>")
}

func TestProcessCmd_Interactive(t *testing.T) {
	dir := t.TempDir()
	dist := testutil.CreateFile(t, dir, "templates/app.ini", "host={{Database host []|localhost}}\nport={{port|5432}}\n")
	file := filepath.Join(dir, "app.ini")

	stdout, _, err := run(t, "db.local\n\n", "process", file, "--dist-file", dist)
	require.NoError(t, err)

	testutil.AssertFileContent(t, file, "host=db.local\nport=5432\n")
	assert.Contains(t, stdout, "Database host [localhost] ")
	assert.Contains(t, stdout, "port ")
}

func TestProcessCmd_ExistingFile(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateFile(t, dir, "app.ini.dist", "v=new\n")
		file := testutil.CreateFile(t, dir, "app.ini", "v=old\n")

		stdout, _, err := run(t, "y\n", "process", file)
		require.NoError(t, err)

		testutil.AssertFileContent(t, file, "v=new\n")
		require.True(t, testutil.FileExists(t, file+".old"))
		assert.Equal(t, "v=old\n", testutil.ReadFile(t, file+".old"))
		assert.Contains(t, stdout, `Rewriting the "`+file+`" file`)
		assert.Contains(t, stdout, "Destination file already exists, overwrite (y/n)? ")
		assert.Contains(t, stdout, "A copy of the old configuration file was saved to "+file+".old")
	})

	t.Run("skip existing when unattended", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateFile(t, dir, "app.ini.dist", "v=new\n")
		file := testutil.CreateFile(t, dir, "app.ini", "v=old\n")

		stdout, _, err := run(t, "", "process", file, "-n", "--skip-existing")
		require.NoError(t, err)

		testutil.AssertFileContent(t, file, "v=old\n")
		testutil.AssertNoFile(t, file+".old")
		assert.Contains(t, stdout, "0 file(s) written, 1 skipped")
	})

	t.Run("settings from environment", func(t *testing.T) {
		dir := t.TempDir()
		testutil.CreateFile(t, dir, "app.ini.dist", "v=new\n")
		file := testutil.CreateFile(t, dir, "app.ini", "v=old\n")

		t.Setenv("DISTFILE_NO_INTERACTION", "true")
		t.Setenv("DISTFILE_SKIP_EXISTING", "true")
		_, _, err := run(t, "y\n", "process", file)
		require.NoError(t, err)

		testutil.AssertFileContent(t, file, "v=old\n")
	})
}

func TestProcessCmd_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "", "process", filepath.Join(dir, "missing.ini"), "-n")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDistFileNotFound))

	testutil.CreateFile(t, dir, "app.ini.dist", "x")
	_, _, err = run(t, "", "process", filepath.Join(dir, "app.ini"), "--type", "php", "-n")
	assert.True(t, errors.IsErrorCode(err, errors.ErrProcessorUnknown))

	_, _, err = run(t, "", "process", filepath.Join(dir, "app.ini"), "--env", "NOVALUE", "-n")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestInstallCmd(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "config/app.ini.dist", "name={{Application name|demo}}\n")
	testutil.CreateFile(t, dir, "config/cache.json.dist", `{"ttl": {{ttl|60}}}`)
	manifest := writeManifest(t, dir,
		map[string]interface{}{"file": filepath.Join(dir, "config", "app.ini")},
		map[string]interface{}{"file": filepath.Join(dir, "config", "cache.json"), "type": "json"},
	)

	stdout, _, err := run(t, "", "install", "--manifest", manifest, "-n")
	require.NoError(t, err)

	testutil.AssertFileContent(t, filepath.Join(dir, "config", "app.ini"), "name=demo\n")
	testutil.AssertFileContent(t, filepath.Join(dir, "config", "cache.json"), `{"ttl": 60}`)
	assert.Contains(t, stdout, "2 file(s) written, 0 skipped")
}

func TestInstallCmd_SettingsMissing(t *testing.T) {
	dir := t.TempDir()
	manifest := testutil.CreateFile(t, dir, "composer.json", `{"name": "acme/app"}`)

	_, _, err := run(t, "", "install", "--manifest", manifest, "-n")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigMissing))
}

func TestInstallCmd_CustomKey(t *testing.T) {
	dir := t.TempDir()
	testutil.CreateFile(t, dir, "app.ini.dist", "a=1\n")
	file := filepath.Join(dir, "app.ini")
	manifest := testutil.CreateFile(t, dir, "distfile.yaml", "config-files:\n  file: "+file+"\n")

	_, _, err := run(t, "", "install", "--manifest", manifest, "--key", "config-files", "-n")
	require.NoError(t, err)
	testutil.AssertFileContent(t, file, "a=1\n")
}

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()
	dist := testutil.CreateFile(t, dir, "app.ini.dist", "host={{host|localhost}}\nkeep={{}}\n")

	stdout, stderr, err := run(t, "db.local\n", "render", dist)
	require.NoError(t, err)

	assert.Equal(t, "host=db.local\nkeep={{}}\n", stdout)
	assert.Contains(t, stderr, "host ")
	testutil.AssertNoFile(t, filepath.Join(dir, "app.ini"))

	_, _, err = run(t, "", "render", filepath.Join(dir, "missing.dist"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestListCmd(t *testing.T) {
	dir := t.TempDir()
	manifest := writeManifest(t, dir,
		map[string]interface{}{"file": "config/app.ini", "env-map": map[string]interface{}{"DB_HOST": "APP_DB_HOST"}},
		map[string]interface{}{"file": "config/cache.json", "type": `Cube\ComposerDistInstaller\Processor\Generic`},
	)

	t.Run("yaml", func(t *testing.T) {
		stdout, _, err := run(t, "", "list", "--manifest", manifest)
		require.NoError(t, err)
		assert.Contains(t, stdout, "dist-installer-params:")
		assert.Contains(t, stdout, "dist-file: config/app.ini.dist")
		assert.Contains(t, stdout, "DB_HOST: APP_DB_HOST")
		assert.Contains(t, stdout, "type: generic")
		assert.NotContains(t, stdout, "Cube")
	})

	t.Run("json", func(t *testing.T) {
		stdout, _, err := run(t, "", "list", "--manifest", manifest, "--format", "json")
		require.NoError(t, err)

		var doc map[string][]map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
		require.Len(t, doc["dist-installer-params"], 2)
		assert.Equal(t, "config/cache.json.dist", doc["dist-installer-params"][1]["dist-file"])
	})

	t.Run("toml", func(t *testing.T) {
		stdout, _, err := run(t, "", "list", "--manifest", manifest, "--format", "toml")
		require.NoError(t, err)
		assert.Contains(t, stdout, "[[dist-installer-params]]")
		assert.Contains(t, stdout, "config/app.ini.dist")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := run(t, "", "list", "--manifest", manifest, "--format", "ini")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestInspectCmd(t *testing.T) {
	dir := t.TempDir()
	dist := testutil.CreateFile(t, dir, "app.ini.dist",
		"host={{Database host []|=ENV[DB_HOST]|localhost}}\nuser={{user|=ENV[DB_USER]}}\n")

	t.Setenv("DISTFILE_CLI_INSPECT_USER", "deploy")
	stdout, _, err := run(t, "", "inspect", dist, "--env", "DB_USER=DISTFILE_CLI_INSPECT_USER", "--env", "DB_HOST=DISTFILE_CLI_UNSET")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Database host [localhost]")
	assert.Contains(t, stdout, "literal")
	assert.Contains(t, stdout, "deploy")
	assert.Contains(t, stdout, "env:DB_USER")

	empty := testutil.CreateFile(t, dir, "plain.dist", "no placeholders")
	stdout, _, err = run(t, "", "inspect", empty)
	require.NoError(t, err)
	assert.Contains(t, stdout, MsgNoPlaceholders)
}

func TestSyntaxCmd(t *testing.T) {
	stdout, _, err := run(t, "", "syntax")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Placeholder syntax")
	assert.Contains(t, stdout, "ENV[DB_HOST]")
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "distfile version")
}

func TestInvalidColor(t *testing.T) {
	_, _, err := run(t, "", "version", "--color", "rainbow")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseEnvPairs(t *testing.T) {
	got, err := parseEnvPairs([]string{"DB_HOST=APP_DB_HOST", " db.user = APP_DB_USER "})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"DB_HOST": "APP_DB_HOST", "db.user": "APP_DB_USER"}, got)

	got, err = parseEnvPairs(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, bad := range []string{"NOEQUALS", "=VAR", "NAME="} {
		_, err := parseEnvPairs([]string{bad})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}
