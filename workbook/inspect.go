package workbook

import (
	"archive/zip"
	"bytes"
	"strings"
)

// FileFormatDescriptions provides descriptions of the file types that can be inspected.
var FileFormatDescriptions = map[string]string{
	"biff": "Raw BIFF workbook stream",
	"xls":  "Excel xls",
	"xlsb": "Excel 2007 xlsb file",
	"xlsx": "Excel xlsx file",
	"ods":  "Openoffice.org ODS file",
	"zip":  "Unknown ZIP file",
	"":     "Unknown file type",
}

// XLS_SIGNATURE is the magic cookie that should appear in the first 8 bytes of an XLS file.
var XLS_SIGNATURE = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// ZIP_SIGNATURE is the magic cookie for ZIP files.
var ZIP_SIGNATURE = []byte("PK\x03\x04")

// BIFF8_SIGNATURE is the opcode of a BIFF8 BOF record, which starts every
// raw workbook stream.
var BIFF8_SIGNATURE = []byte{0x09, 0x08}

// InspectFormat inspects content and returns the file's type as a string,
// or an empty string if it cannot be determined. The return value can
// always be looked up in FileFormatDescriptions.
func InspectFormat(content []byte) string {
	if bytes.HasPrefix(content, XLS_SIGNATURE) {
		return "xls"
	}
	if bytes.HasPrefix(content, BIFF8_SIGNATURE) {
		return "biff"
	}
	if !bytes.HasPrefix(content, ZIP_SIGNATURE) {
		return ""
	}

	zf, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "zip"
	}
	// Workaround for some third party files that use forward slashes and
	// lower case names.
	componentNames := make(map[string]bool)
	for _, f := range zf.File {
		componentNames[strings.ToLower(strings.ReplaceAll(f.Name, "\\", "/"))] = true
	}
	switch {
	case componentNames["xl/workbook.xml"]:
		return "xlsx"
	case componentNames["xl/workbook.bin"]:
		return "xlsb"
	case componentNames["content.xml"]:
		return "ods"
	}
	return "zip"
}
