package config

const SourceFileExt = ".fx"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".fx"}

// DefaultFileName is the configuration file looked up from the working
// directory towards the filesystem root.
const DefaultFileName = "funlint.yaml"
