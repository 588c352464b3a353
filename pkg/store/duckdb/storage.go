package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const InvoiceTableSchema = `
	CREATE TABLE IF NOT EXISTS invoice_data (
		event_id VARCHAR NOT NULL PRIMARY KEY,
		total_costs DOUBLE,
		ccy VARCHAR,
		bill_date TIMESTAMP,
		service_code_description VARCHAR,
		event_desc VARCHAR,
		qty_amt DOUBLE,
		rate DOUBLE,
		charge DOUBLE,
		tax_charge DOUBLE,
		total_charge DOUBLE,
		invoice_ica VARCHAR,
		collection_method VARCHAR,
		input_file_name VARCHAR,
		inv_no VARCHAR,
		uom VARCHAR
	);
`

var bootQueries = []string{
	InvoiceTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
