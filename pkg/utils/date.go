package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Formatos aceitos para datas de venda, em ordem de tentativa
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
}

// Maior serial de data do Excel (31/12/9999)
const maxExcelSerial = 2958465

// ParseDate aceita os formatos de dateLayouts e seriais de data do Excel (ex: 45306 = 2024-01-15)
func ParseDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial >= 1 && serial <= maxExcelSerial {
		if date, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format %q", value)
}
