package domain

const (
	// ConfigFileName is the name of the configuration file looked up from the working directory.
	ConfigFileName = "jute.yaml"

	// StateDirName is the directory, relative to the config root, holding jute's local state.
	StateDirName = ".jute"

	// ResultsFileName is the name of the result store file inside StateDirName.
	ResultsFileName = "results.json"

	// JournalFileName is the progress journal of the latest run inside StateDirName.
	JournalFileName = "journal.jsonl"

	// DefaultBuildTool is the executable used when no wrapper script or explicit tool is configured.
	DefaultBuildTool = "gradle"

	// WrapperScriptName is the build tool wrapper looked up in the project directory.
	WrapperScriptName = "gradlew"

	// PluginMetadataFileName is the file written by the plugin development conventions
	// that lists the implementation classpath of the plugin under test.
	PluginMetadataFileName = "plugin-under-test-metadata.properties"

	// PluginMetadataDir is where the metadata file is generated, relative to a project directory.
	PluginMetadataDir = "build/pluginUnderTestMetadata"

	// PluginMetadataClasspathKey is the key holding the classpath in the metadata file.
	PluginMetadataClasspathKey = "implementation-classpath"

	// EnvPluginMetadata points at an explicit plugin metadata file.
	EnvPluginMetadata = "JUTE_PLUGIN_METADATA"

	// EnvPluginClasspath carries the plugin classpath into the build tool process.
	EnvPluginClasspath = "JUTE_PLUGIN_CLASSPATH"
)

const (
	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
