package database

import (
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormopentracing "gorm.io/plugin/opentracing"
)

// Config is shared by the production and test connections. TranslateError
// turns driver specific unique violations into gorm.ErrDuplicatedKey, which
// the toggle operations depend on.
func Config() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	}
}

// Open connects to MySQL, installs the tracing plugin and migrates the schema.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(utils.GetMysqlDsn()), Config())
	if err != nil {
		return nil, errors.WithMessage(err, "open mysql")
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		return nil, errors.WithMessage(err, "install gorm opentracing plugin")
	}
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	hlog.Info("Starting tables migration...")
	if err := db.AutoMigrate(model.Tables()...); err != nil {
		hlog.Errorf("Failed to migrate tables: %v", err)
		return errors.WithMessage(err, "auto migrate")
	}
	hlog.Info("Tables migration completed successfully")
	return nil
}
