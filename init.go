// init.go wires together the process-wide, read-only state every Position
// depends on: the attack tables and the Zobrist hash keys. Both
// initializers are idempotent and safe to call multiple times or from
// multiple goroutines; call them once, as close as possible to program
// start, before constructing any Position.

package shogo

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger installs the *zap.Logger used for the one-time bring-up log
// lines emitted by InitAttackTables/InitZobristKeys. The zero value is a
// no-op logger, matching library defaults
// that stay silent until a caller opts in.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

var attackTablesOnce sync.Once

// InitAttackTables builds every precomputed attack table (non-sliders and
// sliders). It is idempotent: subsequent calls are no-ops. Move
// generation will panic with a nil-table index if this is never called.
func InitAttackTables() {
	attackTablesOnce.Do(func() {
		start := time.Now()
		buildNonSliderTables()
		buildSliderTables()
		logger.Info("shogo: attack tables initialized",
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("squares", 81),
		)
	})
}

var zobristOnce sync.Once

// InitZobristKeys seeds the pseudo-random keys used by Position's
// repetition hashing (see zobrist.go). Idempotent. If this is never
// called every key is zero, so every position hashes to zero and
// sennichite detection counts all positions as one repeated position.
func InitZobristKeys() {
	zobristOnce.Do(func() {
		start := time.Now()
		seedZobristKeys()
		logger.Info("shogo: zobrist keys initialized", zap.Duration("elapsed", time.Since(start)))
	})
}
