// Parses flags and configures logging for the rootpack CLI.
//
// The CLI accepts the following root flags:
//
//	-q, --quiet   Suppress informational output.
//	-d, --debug   Enable debug output.
//
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// selected command runs. The pack command additionally merges an optional
// YAML configuration file into its flag values; flags extend the config
// file, and both extend the built-in exclusion roots.
package cli
