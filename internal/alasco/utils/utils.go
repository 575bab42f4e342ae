package utils

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/sylvainHellin/Alasco/internal/alasco/types"
)

func ContainsString(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

// SplitList splits a list into consecutive chunks of chunkSize. The last
// chunk may be shorter.
func SplitList(input []string, chunkSize int) ([][]string, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be greater than 0, got %d", chunkSize)
	}

	chunks := make([][]string, 0, (len(input)+chunkSize-1)/chunkSize)
	for i := 0; i < len(input); i += chunkSize {
		end := i + chunkSize
		if end > len(input) {
			end = len(input)
		}
		chunks = append(chunks, input[i:end])
	}
	return chunks, nil
}

// ExtractIDs returns the "id" column of a flattened table as a list.
func ExtractIDs(df dataframe.DataFrame) ([]string, error) {
	if !ContainsString(df.Names(), "id") {
		return nil, &types.SchemaError{Missing: "id"}
	}
	return df.Col("id").Records(), nil
}

func GetStr(col string, rowIdx int, df *dataframe.DataFrame) string {
	if df == nil {
		return ""
	}
	if ContainsString(df.Names(), col) {
		elem := df.Col(col).Elem(rowIdx)
		if elem.IsNA() {
			return ""
		}
		return elem.String()
	}
	return ""
}

func GetInt(col string, rowIdx int, df *dataframe.DataFrame) int {
	if df == nil {
		return 0
	}
	if ContainsString(df.Names(), col) {
		val, err := df.Col(col).Elem(rowIdx).Int()
		if err != nil {
			return 0
		}
		return val
	}
	return 0
}
