package modules

import (
	"expvar"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

var publishOnce sync.Once

// DebugModule exposes expvar at /debug/vars, including the store's
// connection pool statistics.
type DebugModule struct {
	DB      *sqlx.DB
	Limiter gin.HandlerFunc
}

func NewDebugModule(db *sqlx.DB, limiter gin.HandlerFunc) *DebugModule {
	return &DebugModule{DB: db, Limiter: limiter}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	publishOnce.Do(func() {
		db := m.DB
		expvar.Publish("db", expvar.Func(func() any { return db.Stats() }))
	})
	rg.GET("/debug/vars", m.Limiter, gin.WrapH(expvar.Handler()))
}
