package guest

import "errors"

var (
	ErrGuestNotFound    = errors.New("guest not found")
	ErrNameRequired     = errors.New("first or last name is required")
	ErrInvalidChannel   = errors.New("invalid invitation channel")
	ErrMappingRequired  = errors.New("map at least first name or last name")
	ErrNoDataRows       = errors.New("no data found in file")
	ErrUnparseableFile  = errors.New("unparseable file")
	ErrNoImportableRows = errors.New("no valid guests found")
)
