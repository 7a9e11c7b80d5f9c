package types

import "github.com/m-mizutani/goerr/v2"

// Error tags categorize pipeline failures. The CLI maps them to exit
// codes, so every error leaving a usecase must carry exactly one of
// the four category tags.
var (
	// TagStorage marks failures of remote storage calls (upload,
	// share link creation).
	TagStorage = goerr.NewTag("storage")

	// TagFileName marks failures deriving the release file name.
	TagFileName = goerr.NewTag("file_name")

	// TagChangelog marks failures reading or extracting the changelog.
	TagChangelog = goerr.NewTag("changelog")

	// TagOutputParse marks failures reading or parsing the build
	// tool's output.json.
	TagOutputParse = goerr.NewTag("output_parse")

	// TagMetadataSchema marks the specific case where output.json was
	// readable but carried none of the known metadata keys. It is
	// always accompanied by TagOutputParse.
	TagMetadataSchema = goerr.NewTag("metadata_schema")
)
