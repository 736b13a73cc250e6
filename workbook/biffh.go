package workbook

import "fmt"

// Error represents a failure to read the workbook stream itself, as
// opposed to a fault inside one chart substream.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a new Error with the given message.
func NewError(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// BOF substream types
const (
	XL_WORKBOOK_GLOBALS = 0x5
	XL_WORKSHEET        = 0x10
	XL_CHART            = 0x20
	XL_MACROSHEET       = 0x40
	XL_WORKSPACE        = 0x100
)

// BOUNDSHEET sheet types
const (
	XL_BOUNDSHEET_WORKSHEET = 0x00
	XL_BOUNDSHEET_MACRO     = 0x01
	XL_BOUNDSHEET_CHART     = 0x02
	XL_BOUNDSHEET_VB_MODULE = 0x06
)

// Workbook-globals record types
const (
	XL_BOF         = 0x809
	XL_BOUNDSHEET  = 0x85
	XL_CODEPAGE    = 0x42
	XL_DATEMODE    = 0x22
	XL_EOF         = 0x0a
	XL_FILEPASS    = 0x2f
	XL_FONT        = 0x31
	XL_PALETTE     = 0x92
	XL_WRITEACCESS = 0x5C
)

var biffTextFromNum = map[int]string{
	0:  "(not BIFF)",
	20: "2.0",
	21: "2.1",
	30: "3",
	40: "4S",
	45: "4W",
	50: "5",
	70: "7",
	80: "8",
}

// BiffTextFromNum returns a text representation of a BIFF version number.
func BiffTextFromNum(num int) string {
	if text, ok := biffTextFromNum[num]; ok {
		return text
	}
	return fmt.Sprintf("Unknown(%d)", num)
}

var bofcodes = []int{0x0809, 0x0409, 0x0209, 0x0009}

var streamTypeNames = map[int]string{
	XL_WORKBOOK_GLOBALS: "globals",
	XL_WORKSHEET:        "worksheet",
	XL_CHART:            "chart",
	XL_MACROSHEET:       "macro sheet",
	XL_WORKSPACE:        "workspace",
}

// EncodingFromCodepage maps codepage numbers to encoding names.
var EncodingFromCodepage = map[int]string{
	367:   "ascii",
	437:   "cp437",
	1200:  "utf_16_le",
	1252:  "cp1252",
	10000: "mac_roman",
	32768: "mac_roman",
	32769: "cp1252",
}
