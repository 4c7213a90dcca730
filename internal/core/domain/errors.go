package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidProperty is returned when a property is built from a missing or malformed name, kind or value.
	ErrInvalidProperty = zerr.New("invalid property")

	// ErrInvokerCannotBuild is returned when a build is requested from an invoker that cannot execute builds.
	ErrInvokerCannotBuild = zerr.New("invoker cannot execute builds")

	// ErrProjectDirRequired is returned when a build is started without a project directory.
	ErrProjectDirRequired = zerr.New("project directory is required")

	// ErrBuildToolNotFound is returned when the build tool executable cannot be resolved.
	ErrBuildToolNotFound = zerr.New("build tool not found")

	// ErrCommandFailed is returned when the build tool process exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrUnexpectedBuildFailure is returned by Build when the build was expected to succeed but failed.
	ErrUnexpectedBuildFailure = zerr.New("build failed unexpectedly")

	// ErrUnexpectedBuildSuccess is returned by BuildAndFail when the build was expected to fail but succeeded.
	ErrUnexpectedBuildSuccess = zerr.New("build succeeded unexpectedly")

	// ErrBuildExecutionFailed is returned when the build could not be executed at all.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrConfigNotFound is returned when no jute.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find " + ConfigFileName)

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPluginMetadataNotFound is returned when the plugin-under-test metadata file cannot be located.
	ErrPluginMetadataNotFound = zerr.New("plugin metadata file not found")

	// ErrPluginMetadataInvalid is returned when the plugin-under-test metadata file has no usable classpath.
	ErrPluginMetadataInvalid = zerr.New("plugin metadata file is invalid")

	// ErrClasspathEntryNotFound is returned when a plugin classpath pattern matches nothing.
	ErrClasspathEntryNotFound = zerr.New("classpath entry not found")

	// ErrStoreReadFailed is returned when the result store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read result store")

	// ErrStoreWriteFailed is returned when the result store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write result store")
)
