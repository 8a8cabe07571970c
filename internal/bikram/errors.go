package bikram

import "errors"

// Conversion failures. None of them is transient: they describe dates the
// table cannot represent, so callers show a placeholder instead of retrying.
var (
	// ErrUnsupportedYear reports a BS year (or the approximate BS year of a
	// Gregorian date) outside the calendar table.
	ErrUnsupportedYear = errors.New("bikram: year outside supported range")

	// ErrTraversalUnderflow reports a day walk that ran past the ends of a
	// year. It indicates inconsistent table data.
	ErrTraversalUnderflow = errors.New("bikram: day traversal left the year")

	// ErrInvalidDate reports a month or day that does not exist in its year.
	ErrInvalidDate = errors.New("bikram: invalid month or day")

	// ErrEmptyTable and ErrInvalidTable are returned by NewTable.
	ErrEmptyTable   = errors.New("bikram: calendar table has no records")
	ErrInvalidTable = errors.New("bikram: calendar table is inconsistent")
)
