package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS app_state (
    key                  TEXT PRIMARY KEY,
    payload              TEXT NOT NULL,
    updated_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS vault_entries (
    seq                  INTEGER PRIMARY KEY,
    day                  TEXT NOT NULL,
    amount               INTEGER NOT NULL,
    recorded_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vault_entries_day ON vault_entries(day);
`
