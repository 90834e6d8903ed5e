package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Materialize configuration files from dist templates"
	MsgInstallShort = "Materialize every file listed in the project manifest"
	MsgProcessShort = "Materialize a single file from its dist template"
	MsgRenderShort  = "Resolve a dist template and print the result"
	MsgListShort    = "List the configured files"
	MsgListLong     = "List prints the entries of the project manifest with their defaults filled in. The output can be used as a manifest."
	MsgInspectShort = "Show the questions a dist template will ask"
	MsgInspectLong  = "Inspect lists every placeholder of a dist template with the default it would offer right now and where that default comes from. Nothing is asked."
	MsgSyntaxShort  = "Describe the placeholder syntax"
	MsgVersionShort = "Print version information"

	// Status messages
	MsgSummary        = "<info>%d file(s) written</info>, <comment>%d skipped</comment>"
	MsgNoEntries      = "<comment>No files configured</comment>"
	MsgNoPlaceholders = "No placeholders found."
	MsgVersion        = "distfile version %s\n"
	MsgVersionCommit  = "Commit: %s\n"
	MsgVersionDate    = "Built:  %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrEnvPair     = "invalid --env value %q, expected NAME=VARIABLE"
	MsgErrListFormat  = "unknown list format %q (use yaml, toml or json)"
	MsgErrReadDist    = "failed to read dist file %s"
	MsgErrColorFormat = "invalid --color value"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoInteraction = "Do not ask anything, use defaults"
	MsgFlagSkipExisting  = "Keep existing files unless told otherwise"
	MsgFlagColor         = "Color output: auto, always or never"
	MsgFlagManifest      = "Path to the manifest (default: first of the configured manifests in the current directory)"
	MsgFlagKey           = "Settings key holding the entries (default: dist-installer-params)"
	MsgFlagDistFile      = "Template path (default: FILE.dist)"
	MsgFlagType          = "Processor type: generic, json, yaml, toml or xml"
	MsgFlagEnv           = "Map a question name to an environment variable, NAME=VARIABLE (repeatable)"
	MsgFlagFormat        = "Output format: yaml, toml or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/process-example.txt
	msgProcessExampleRaw string
	MsgProcessExample    = strings.TrimRight(msgProcessExampleRaw, "\n")

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/syntax.md
	MsgSyntaxGuide string
)
