package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/portal/core"
)

const pingTimeout = 2 * time.Second

// dbError wraps err with msg. When the database no longer answers a ping the
// connection is considered lost and a shutdown error is returned instead.
func dbError(db *sqlx.DB, err error, msg string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, msg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if pingErr := db.PingContext(ctx); pingErr != nil {
		return errors.Wrap(core.NewShutdownError("database connection lost: "+pingErr.Error()), msg)
	}
	return errors.Wrap(err, msg)
}
