package storage

// schemaSQL creates the candidate and shortlist tables. It is safe to run on
// every start.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS candidates (
    id          BIGSERIAL PRIMARY KEY,
    name        TEXT        NOT NULL DEFAULT 'Student',
    resume_text TEXT        NOT NULL DEFAULT '',
    skills      TEXT        NOT NULL DEFAULT '',
    filename    TEXT        NOT NULL DEFAULT '',
    email       TEXT        NOT NULL DEFAULT '',
    phone       TEXT        NOT NULL DEFAULT '',
    summary     TEXT        NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS shortlist (
    id           BIGSERIAL PRIMARY KEY,
    candidate_id BIGINT      NOT NULL UNIQUE REFERENCES candidates(id) ON DELETE CASCADE,
    added_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS shortlist_added_at_idx ON shortlist (added_at DESC, id DESC);
`
