package sheet

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/pkg/errors"
	"github.com/tealeg/xlsx"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoSheet           = errors.New("workbook has no sheets")
)

// Load reads the first sheet of a csv, xlsx or xls file
func Load(path string) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		records, err = readCSV(path)
	case ".xlsx":
		records, err = readXLSX(path)
	case ".xls":
		records, err = readXLS(path)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "load %s", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return NewTable(records), nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parse csv")
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, err
	}
	if len(f.Sheets) == 0 {
		return nil, ErrNoSheet
	}
	sh := f.Sheets[0]
	records := make([][]string, 0, len(sh.Rows))
	for _, row := range sh.Rows {
		if row == nil {
			records = append(records, nil)
			continue
		}
		rec := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			if c != nil {
				rec[j] = c.String()
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func readXLS(path string) ([][]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb.NumSheets() == 0 {
		return nil, ErrNoSheet
	}
	sh := wb.GetSheet(0)
	if sh == nil {
		return nil, ErrNoSheet
	}
	rows := int(sh.MaxRow) + 1
	records := make([][]string, 0, rows)
	for i := 0; i < rows; i++ {
		row := sh.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		rec := make([]string, row.LastCol()+1)
		for j := range rec {
			rec[j] = row.Col(j)
		}
		records = append(records, rec)
	}
	return records, nil
}
