package storage

const schema = `
-- Every domain ever checked, with its latest availability and score.
CREATE TABLE IF NOT EXISTS domains (
    domain TEXT PRIMARY KEY,
    word TEXT NOT NULL,
    tld TEXT NOT NULL,
    available INTEGER,
    method TEXT,
    error TEXT,

    total_score REAL,
    pronounceability INTEGER,
    spellability INTEGER,
    length_score INTEGER,
    memorability INTEGER,
    brandability INTEGER,
    euphony INTEGER,
    meaning_score INTEGER,
    tld_multiplier REAL,

    first_checked DATETIME NOT NULL,
    last_checked DATETIME NOT NULL,
    check_count INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_domains_available ON domains(available);
CREATE INDEX IF NOT EXISTS idx_domains_total_score ON domains(total_score);
CREATE INDEX IF NOT EXISTS idx_domains_tld ON domains(tld);
CREATE INDEX IF NOT EXISTS idx_domains_word ON domains(word);

-- One row per check batch.
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    started_at DATETIME NOT NULL,
    finished_at DATETIME,
    checked INTEGER NOT NULL DEFAULT 0,
    available INTEGER NOT NULL DEFAULT 0
);
`
