package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists evaluation history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS exit_reviews (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			ticker         TEXT NOT NULL,
			purchase_price REAL,
			current_price  REAL,
			recent_high    REAL,
			shares         REAL,
			mode           TEXT,
			order_price    REAL,
			raw_line       REAL,
			label          TEXT,
			is_emergency   INTEGER,
			profit_pct     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_exit_ts ON exit_reviews(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_exit_ticker ON exit_reviews(ticker)`,

		`CREATE TABLE IF NOT EXISTS entry_scans (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			ticker             TEXT NOT NULL,
			current_price      REAL,
			rsi                REAL,
			volume_ratio       REAL,
			score              INTEGER,
			reasons            TEXT,
			recommended_shares INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entry_ts ON entry_scans(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_entry_ticker ON entry_scans(ticker)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordExitReview(rev *ExitReview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	emergency := 0
	if rev.Result.IsEmergency {
		emergency = 1
	}
	_, err := r.db.Exec(`INSERT INTO exit_reviews
		(timestamp, ticker, purchase_price, current_price, recent_high, shares, mode,
		 order_price, raw_line, label, is_emergency, profit_pct)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rev.Ticker, rev.PurchasePrice, rev.CurrentPrice,
		rev.RecentHigh, rev.Shares, rev.Mode,
		rev.Result.OrderPrice, rev.Result.RawLine, rev.Result.Label,
		emergency, rev.Result.ProfitPct,
	)
	return err
}

func (r *SQLiteRecorder) RecordEntryScan(scan *EntryScan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO entry_scans
		(timestamp, ticker, current_price, rsi, volume_ratio, score, reasons, recommended_shares)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), scan.Ticker, scan.CurrentPrice, scan.RSI,
		scan.VolumeRatio, scan.Result.Score, strings.Join(scan.Result.Reasons, ","),
		scan.RecommendedShares,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
