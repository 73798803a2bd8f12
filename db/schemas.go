package db

var schema = `
CREATE TABLE IF NOT EXISTS saga_log (
	id BIGSERIAL PRIMARY KEY,
	saga_id UUID NOT NULL,
	saga VARCHAR(64) NOT NULL,
	step VARCHAR(64) NOT NULL,
	status VARCHAR(16) NOT NULL,
	detail TEXT NOT NULL DEFAULT '',
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS saga_log_saga_id_idx ON saga_log (saga_id);
`
