package commands

import (
	"go.uber.org/zap"

	"github.com/mcarr10/oncall-scheduler/internal/config"
	"github.com/mcarr10/oncall-scheduler/pkg/datadir"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Store  *datadir.Store
	Logger *zap.Logger
}
