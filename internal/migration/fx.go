// Package migration keeps the schema usable out of the box: every
// table is created automatically on startup.
package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	debtdomain "github.com/smallbiznis/fiado/internal/debt/domain"
	inventorydomain "github.com/smallbiznis/fiado/internal/inventory/domain"
	receivabledomain "github.com/smallbiznis/fiado/internal/receivable/domain"
)

var Module = fx.Module("migrations",
	fx.Invoke(Run),
)

func Run(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&debtdomain.Debt{},
		&debtdomain.Payment{},
		&debtdomain.Addition{},
		&inventorydomain.Product{},
		&inventorydomain.Movement{},
		&receivabledomain.Receivable{},
	)
}
