package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/jute/internal/app"
)

// addBuildFlags registers the flags shared by the commands that configure a build.
func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("project-dir", "", "Directory of the build under test")
	cmd.Flags().String("build-file", "", "Build file of the build under test; its directory becomes the project directory")
	cmd.Flags().String("tool", "", "Build tool executable (default: the project's gradlew, else gradle)")
	cmd.Flags().StringArrayP("property", "P", nil, "Project property as name=value (repeatable)")
	cmd.Flags().StringArrayP("system-property", "D", nil, "System property as name=value (repeatable)")
	cmd.Flags().Bool("default-classpath", false, "Use the plugin-under-test metadata as plugin classpath")
}

// buildOptions reads the shared build flags. Positional args are passed to the build tool.
func buildOptions(cmd *cobra.Command, args []string) app.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	projectDir, _ := cmd.Flags().GetString("project-dir")
	buildFile, _ := cmd.Flags().GetString("build-file")
	tool, _ := cmd.Flags().GetString("tool")
	props, _ := cmd.Flags().GetStringArray("property")
	sysProps, _ := cmd.Flags().GetStringArray("system-property")
	defaultClasspath, _ := cmd.Flags().GetBool("default-classpath")

	return app.RunOptions{
		ConfigPath:       configPath,
		ProjectDir:       projectDir,
		BuildFile:        buildFile,
		BuildTool:        tool,
		Arguments:        args,
		Properties:       props,
		SystemProperties: sysProps,
		DefaultClasspath: defaultClasspath,
	}
}
