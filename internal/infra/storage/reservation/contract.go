package reservation

import (
	"context"
	"database/sql"

	"github.com/petmily/ClinicReservationService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works against
// both *sql.DB and the metrics-wrapped handle.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner is satisfied by *sql.DB and *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
