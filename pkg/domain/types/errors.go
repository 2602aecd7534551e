package types

import "github.com/m-mizutani/goerr/v2"

// Error kinds of an export attempt. Check them with goerr.HasTag.
var (
	ErrTagValidation         = goerr.NewTag("validation")
	ErrTagDestinationMissing = goerr.NewTag("destination_missing")
	ErrTagInvalidOutputPath  = goerr.NewTag("invalid_output_path")
	ErrTagOutputExists       = goerr.NewTag("output_already_exists")
	ErrTagSourceMissing      = goerr.NewTag("source_missing")
	ErrTagOutputVanished     = goerr.NewTag("output_directory_vanished")
	ErrTagManifestWrite      = goerr.NewTag("manifest_write")
	ErrTagDraft              = goerr.NewTag("draft")
)
