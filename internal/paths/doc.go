// Provides platform-appropriate paths for the packer.
//
// All paths follow XDG conventions on Linux and platform-native
// conventions on macOS and Windows, with "rootpack" as the subdirectory
// under each base path.
package paths
