package spreadsheet

import "errors"

var (
	// ErrMissingHeader is returned when sheet has no header row.
	ErrMissingHeader = errors.New("missing header row")
	// ErrMissingColumn is returned when header row lacks required column.
	ErrMissingColumn = errors.New("missing column")
	// ErrInvalidCell is returned when cell value can't be converted to field type.
	ErrInvalidCell = errors.New("invalid cell")
)
