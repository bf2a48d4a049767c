// Package archive mirrors a tide table into a SQLite database.
package archive

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sumwatshade/tidetable/cmd/tides"
)

// Row is one stored reading. Seq keeps table order.
type Row struct {
	ID          uint   `gorm:"primaryKey"`
	Seq         int    `gorm:"index"`
	DateTime    string `gorm:"column:date_time"`
	StationName string `gorm:"index"`
	TideValue   string
}

func (Row) TableName() string { return "readings" }

// Open opens (creating if needed) the SQLite database at path and migrates the
// readings table.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Row{}); err != nil {
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return db, nil
}

// Push replaces the stored readings with those of t in a single transaction.
func Push(db *gorm.DB, t *tides.Table) error {
	readings := t.Readings()
	rows := make([]Row, len(readings))
	for i, r := range readings {
		rows[i] = Row{Seq: i, DateTime: r.DateTime, StationName: r.Station, TideValue: r.Value}
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Row{}).Error; err != nil {
			return fmt.Errorf("clear readings: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("insert readings: %w", err)
		}
		return nil
	})
}

// Pull loads the stored readings in their original order.
func Pull(db *gorm.DB) (*tides.Table, error) {
	var rows []Row
	if err := db.Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read readings: %w", err)
	}
	readings := make([]tides.Reading, len(rows))
	for i, r := range rows {
		readings[i] = tides.Reading{DateTime: r.DateTime, Station: r.StationName, Value: r.TideValue}
	}
	return tides.New(readings), nil
}
