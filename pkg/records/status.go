package records

import "fmt"

// Status is an operation outcome code.
type Status int

const (
	StatusOK           Status = 0
	StatusError        Status = -1
	StatusInvalidParam Status = -2
	StatusOutOfMemory  Status = -3
	StatusFileNotFound Status = -4
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusInvalidParam:
		return "invalid parameter"
	case StatusOutOfMemory:
		return "out of memory"
	case StatusFileNotFound:
		return "file not found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ColorIndex names the eight basic terminal colors.
type ColorIndex uint8

const (
	ColorBlack ColorIndex = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorCount
)
