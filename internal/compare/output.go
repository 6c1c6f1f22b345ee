// Public domain.

package compare

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/geobridge/geobridge/rcstat"
)

// printer accumulates the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) f(format string, a ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, a...)
	}
}

func (p *printer) rule(title string) {
	bar := strings.Repeat("=", 72)
	p.f("%s\n%s\n%s\n", bar, title, bar)
}

func ff(x float64) string {
	if rcstat.IsUndefined(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'g', 10, 64)
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// save writes a single file into dir, creating dir if needed.
func save(dir, name string, write func(io.Writer) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	fn := filepath.Join(dir, name)
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fn, err)
	}
	return f.Close()
}
