package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/zomato/internal/ports"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	// Errors — причины отказа по номерам строк (нумерация с 1).
	Errors map[int]error
}

// ValidateJSONLStream — читает JSONL из reader'а, валидирует каждую строку, валидные пишет в writer.
// Печатает канонический JSON одной строкой на каждую валидную запись.
// Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.Validator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	res := JSONLResult{Errors: make(map[int]error)}

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineBytes := scanner.Bytes()
		if strings.TrimSpace(string(lineBytes)) == "" {
			continue
		}

		rec, err := ValidateMenuItemFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			res.Errors[lineNo] = err
			continue
		}

		marshal, _ := json.Marshal(rec)
		if _, err := ow.Write(append(marshal, '\n')); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
