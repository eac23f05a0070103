package surreal

import (
	"context"
	"fmt"
	"strings"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// schemaTemplate is the idempotent schema bootstrap. Tables stay SCHEMALESS,
// documents carry whatever fields their writers stamp, but the user table
// gets a unique email index and the record-access method the signup endpoint
// authenticates against. %ACCESS% is substituted with the configured access
// method name.
const schemaTemplate = `
DEFINE TABLE IF NOT EXISTS raga SCHEMALESS;
DEFINE TABLE IF NOT EXISTS user SCHEMALESS;
DEFINE TABLE IF NOT EXISTS recording SCHEMALESS;
DEFINE TABLE IF NOT EXISTS favorite_raga SCHEMALESS;
DEFINE TABLE IF NOT EXISTS favorite_raga_ref SCHEMALESS;
DEFINE TABLE IF NOT EXISTS preset SCHEMALESS;
DEFINE TABLE IF NOT EXISTS version SCHEMALESS;

DEFINE INDEX IF NOT EXISTS user_email_unique ON user FIELDS email UNIQUE;

DEFINE ACCESS IF NOT EXISTS %ACCESS% ON DATABASE TYPE RECORD
	SIGNIN (
		SELECT * FROM user WHERE email = $email AND crypto::argon2::compare(password, $pass)
	)
	SIGNUP (
		CREATE user CONTENT {
			email: $email,
			password: crypto::argon2::generate($pass)
		}
	);
`

// Bootstrap applies the schema definitions. Safe to run on every startup.
func (s *Store) Bootstrap(ctx context.Context) error {
	script := strings.ReplaceAll(schemaTemplate, "%ACCESS%", s.cfg.Access)
	if _, err := surrealdb.Query[any](ctx, s.db, script, nil); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
