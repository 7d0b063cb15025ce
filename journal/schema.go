// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	trade_date TEXT NOT NULL,
	outcome TEXT NOT NULL,
	contracts INTEGER NOT NULL,
	profit REAL NOT NULL,
	loss REAL NOT NULL,
	balance_before REAL NOT NULL,
	balance_after REAL NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	created DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date);

CREATE TABLE IF NOT EXISTS session_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated DATETIME NOT NULL
);
`
