package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Season errors
	InvalidSeasonError
	InvalidSeasonRangeError
	EmptyRegistryError

	// Fetch errors
	FetchError
	FetchStatusError
	FetchDecodeError

	// Source data errors
	MissingColumnError
	InvalidFieldError
	NoGameweekDataError
	NoStandingsTableFoundError

	// Mapping errors
	MappingReadError
	MappingEmptyError

	// Metadata gate errors
	MetaReadError
	MetaWriteError

	// Artifact store errors
	ArtifactReadError
	ArtifactWriteError
	ArtifactMissingError

	// Pipeline errors
	SeasonFailedError
	AllSeasonsFailedError
	CancelledError

	// Export errors
	ExportConnectionError
	ExportSchemaError
	ExportWriteError
	ExportDriverError
)
