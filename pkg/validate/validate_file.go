package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/zomato/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ParseFormat — формат из флага командной строки.
func ParseFormat(raw string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatAuto, FormatJSON, FormatJSONL:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", raw)
	}
}

// ValidateFile — валидирует файл импорта меню как JSON или JSONL и пишет валидный вывод в writer.
// JSON-файл может содержать одну запись или массив записей.
func ValidateFile(ctx context.Context, validator ports.Validator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		valid, invalidCount, err := validateJSONDocument(ctx, validator, raw, ow)
		summary := fmt.Sprintf("%d valid / %d invalid", valid, invalidCount)
		return summary, err

	case FormatJSONL:
		result, err := ValidateJSONLStream(ctx, validator, file, ow)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d valid / %d invalid", result.ValidLinesCount, result.InvalidLinesCount), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func detectFormat(filePath string) InputFormat {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatJSON
	}
}

// validateJSONDocument — одиночный объект или массив объектов.
// Для одиночного объекта ошибка валидации возвращается вызывающему.
func validateJSONDocument(ctx context.Context, validator ports.Validator, raw []byte, ow io.Writer) (valid, invalidCount int, err error) {
	trimmed := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(trimmed, "[") {
		rec, err := ValidateMenuItemFromJSON(ctx, validator, raw)
		if err != nil {
			return 0, 1, err
		}
		return 1, 0, writeCanonical(ow, rec)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return 0, 1, fmt.Errorf("invalid json: %w", err)
	}
	for _, r := range records {
		rec, err := ValidateMenuItemFromJSON(ctx, validator, r)
		if err != nil {
			invalidCount++
			continue
		}
		if err := writeCanonical(ow, rec); err != nil {
			return valid, invalidCount, err
		}
		valid++
	}
	return valid, invalidCount, nil
}

func writeCanonical(ow io.Writer, v any) error {
	canonical, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := ow.Write(append(canonical, '\n')); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
