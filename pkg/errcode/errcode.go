package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	WriteConfigError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBUnknownDriverError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBExecError
	DBCountError
	DBBeginTxError
	DBCommitTxError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaIndexError
	SchemaDropError
	SchemaClearError
	SchemaMigrateError
	SchemaMigrateUnsupportedError

	// Source document errors
	SourceLocationError
	SourceFetchError
	SourceS3Error
	DocumentParseError

	// Populate errors
	PopulateLoadTableError
	PopulateCancelledError

	// Validate errors
	ValidateCountError
	ValidateIntegrityError
	ValidateInvalidDataError

	// Optimize errors
	OptimizeVacuumError

	// Metrics errors
	MetricsWriteError
)
