package apperror

import "errors"

var (
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrInvalidMark    = errors.New("invalid player mark")
	ErrMountNotFound  = errors.New("mount not found")
	ErrRegionNotFound = errors.New("region not found")
	ErrLessonNotFound = errors.New("lesson not found")
)
