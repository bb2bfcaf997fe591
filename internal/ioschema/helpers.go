package ioschema

import (
	"fmt"

	"github.com/weaponstats/wsdb/pkg/db"
)

// dropTableSQL cascades where the dialect allows it.
func dropTableSQL(d db.Dialect, table string) string {
	if d.SupportsCascade() {
		return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)
	}
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
}

func dropSequenceSQL(seq string) string {
	return fmt.Sprintf("DROP SEQUENCE IF EXISTS %s CASCADE", seq)
}

func deleteSQL(table string) string {
	return fmt.Sprintf("DELETE FROM %s", table)
}
