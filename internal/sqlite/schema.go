package sqlite

// Schema DDL. seq orders rows by insertion; barcode carries the catalog key.
// Prices are stored as decimal text so no float rounding creeps in.
const (
	createSnacks = `CREATE TABLE snacks (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    barcode INTEGER NOT NULL UNIQUE,
    calories INTEGER NOT NULL,
    price TEXT NOT NULL,
    name TEXT NOT NULL
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createSnacks,
}
