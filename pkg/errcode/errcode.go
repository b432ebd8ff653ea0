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

	// Logging errors
	CreateLogFileError

	// Dataset registry errors
	DatasetsConfigError
	DatasetNotFoundError

	// Ingestion errors
	IngestOpenError
	IngestSheetNotFoundError
	IngestFormatError
	IngestMetadataError
	IngestAllFailedError

	// Store errors
	StoreOpenError
	StoreSaveError
	StoreLoadError

	// Export errors
	DBConnectionError
	DBNotConnectedError
	ExportSchemaError
	ExportCopyError

	// Server errors
	ServeStartError
)
