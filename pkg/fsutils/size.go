package fsutils

import "strconv"

// NotAvailable is shown in place of a size that could not be probed.
const NotAvailable = "N/A"

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// ShortSize renders size with 1024 based units rounded to the nearest whole
// unit, e.g. 1536 as "2KB". Sizes above the last unit stay in TB. An unknown
// or negative size renders as NotAvailable.
func ShortSize(size int64, known bool) string {
	if !known || size < 0 {
		return NotAvailable
	}
	div := int64(1)
	for exp := 0; ; exp++ {
		val := size / div
		if rem := size % div; div > 1 && rem >= div/2 {
			val++
		}
		if val < 1024 || exp == len(sizeUnits)-1 {
			return strconv.FormatInt(val, 10) + sizeUnits[exp]
		}
		div *= 1024
	}
}
