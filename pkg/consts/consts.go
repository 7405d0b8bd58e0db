package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ObjectDelimiter separates individual object definitions inside a
	// chapter of a Denodo VQL export.
	ObjectDelimiter = "CREATE OR REPLACE"

	// PropertiesPreamble is the marker Denodo places at the top of an
	// export that requires an accompanying properties file. It must be
	// preserved when a repository is reassembled into a single script.
	PropertiesPreamble = "# REQUIRES-PROPERTIES-FILE - # Do not remove this comment!\n#\n"

	// BannerRule is the comment rule used above and below a chapter name
	// in an export file.
	BannerRule = "# #######################################"

	// SumFileName is the repository integrity file written next to the
	// chapter folders.
	SumFileName = "vqlkeeper.sum"

	// PartLogName is the per-chapter ordering file listing object files
	// in their original export order.
	PartLogName = "part.log"

	// VQLFileExt is the file extension used for per-object files in a
	// repository tree.
	VQLFileExt = ".vql"

	// ConfigFileName is the project configuration file vqlkeeper looks
	// for in the project directory.
	ConfigFileName = "vqlkeeper.yaml"

	// DefaultRepositoryDir is the default directory for the split
	// repository tree.
	DefaultRepositoryDir = "repo"

	// DefaultExportsDir is the default directory for raw export files.
	DefaultExportsDir = "exports"
)
