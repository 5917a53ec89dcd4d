package catalog

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

const fileHeader = "# Configuration file for fileexp.\n" +
	"# It is used by the file explorer to detect file types.\n\n"

// WriteTo serializes the catalog in the format Parse reads. Keys sharing a
// label are written on one line.
func (c Catalog) WriteTo(w io.Writer) (int64, error) {
	byLabel := make(map[string][]string)
	for k, v := range c.types {
		byLabel[v] = append(byLabel[v], k)
	}
	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}
	_, _ = io.WriteString(cw, fileHeader)
	for _, label := range labels {
		keys := byLabel[label]
		sort.Strings(keys)
		_, _ = io.WriteString(cw, strings.Join(keys, " ")+" = "+label+"\n")
	}
	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, bw.Flush()
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
