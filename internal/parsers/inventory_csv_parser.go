package parsers

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/RoyceAzure/lab/ordercenter/internal/model"
	"github.com/shopspring/decimal"
)

// 必要欄位, 以header名稱對應, 大小寫與欄位順序皆不敏感
var requiredHeaders = []string{"CODE", "REMARK", "TYPE", "CATEGORY", "DESCRIPTION", "UNITS", "PACKING"}

// ParseInventoryCSV 解析tab分隔的inventory上傳檔
//
// 規則:
//   - 第一行為header, 欄位以名稱定位
//   - 欄位數與header不一致的資料行直接略過, 不視為錯誤
//   - REMARK空字串轉為nil
//   - PACKING解析失敗或為空時補0
//   - 輸出保留輸入行的順序, 沒有資料行時回傳空slice
func ParseInventoryCSV(r io.Reader) ([]model.InventoryItemModel, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return []model.InventoryItemModel{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	colIndex, err := getColIndex(header, requiredHeaders)
	if err != nil {
		return nil, err
	}

	items := []model.InventoryItemModel{}
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			//讀取失敗的資料行略過
			continue
		}
		if len(rec) != len(header) {
			continue
		}

		get := func(name string) string {
			return strings.TrimSpace(rec[colIndex[name]])
		}

		item := model.InventoryItemModel{
			Code:        get("CODE"),
			Type:        get("TYPE"),
			Category:    get("CATEGORY"),
			Description: get("DESCRIPTION"),
			Units:       get("UNITS"),
		}

		if remark := get("REMARK"); remark != "" {
			item.Remark = &remark
		}

		if packing, err := decimal.NewFromString(get("PACKING")); err == nil {
			item.Packing = packing
		} else {
			item.Packing = decimal.Zero
		}

		items = append(items, item)
	}
	return items, nil
}

// skipBOM 略過UTF-8 BOM
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	peeked, err := br.Peek(3)
	if err != nil {
		return br
	}
	if peeked[0] == 0xEF && peeked[1] == 0xBB && peeked[2] == 0xBF {
		br.Discard(3)
	}
	return br
}

// getColIndex 以大小寫不敏感的header名稱建立欄位索引
func getColIndex(header []string, required []string) (map[string]int, error) {
	colIndex := make(map[string]int)
	for i, colName := range header {
		colIndex[strings.ToUpper(strings.TrimSpace(colName))] = i
	}
	for _, req := range required {
		if _, ok := colIndex[req]; !ok {
			return nil, fmt.Errorf("missing required header: %s", req)
		}
	}
	return colIndex, nil
}
