// Пакет migrations — SQL-миграции goose, встроенные в бинарник.
package migrations

import "embed"

// FS — файлы миграций (*.sql в корне пакета).
//
//go:embed *.sql
var FS embed.FS
