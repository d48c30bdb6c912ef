package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is loaded from the working directory when present
	DefaultConfigFile = ".sqlfmt.yaml"

	// ConfigSection is the YAML key and INI section holding formatter settings
	ConfigSection = "sqlfmt"

	// EnvConfig names the environment variable read by the --config flag
	EnvConfig = "SQLFMT_CONFIG"
)

// SQLExtensions are the file extensions picked up when formatting a directory.
var SQLExtensions = []string{".sql", ".hql"}
