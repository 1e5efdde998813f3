package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/mentor-hub/internal/domain/repository"
)

type session struct {
	users   *UserRepository
	mentors *MentorProfileRepository
}

func newSession(db DBTX) *session {
	return &session{users: NewUserRepository(db), mentors: NewMentorProfileRepository(db)}
}

func (s *session) Users() repository.UserRepository            { return s.users }
func (s *session) Mentors() repository.MentorProfileRepository { return s.mentors }

// Conn is a checked-out connection able to run queries and begin transactions.
type Conn interface {
	DBTX
	TxBeginner
}

// Acquirer checks out a connection together with the func that returns it.
type Acquirer interface {
	Acquire(ctx context.Context) (Conn, func(), error)
}

type poolAcquirer struct{ pool *pgxpool.Pool }

func (p poolAcquirer) Acquire(ctx context.Context) (Conn, func(), error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, nil, err
	}
	return conn, conn.Release, nil
}

// UnitOfWork binds each unit of work to a single pooled connection. The
// connection is released when the unit returns, on every path.
type UnitOfWork struct {
	conns Acquirer
}

func NewUnitOfWork(pool *pgxpool.Pool) *UnitOfWork {
	return &UnitOfWork{conns: poolAcquirer{pool: pool}}
}

func NewUnitOfWorkFrom(conns Acquirer) *UnitOfWork {
	return &UnitOfWork{conns: conns}
}

func (u *UnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, s repository.Session) error) error {
	conn, release, err := u.conns.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer release()
	return fn(ctx, newSession(conn))
}

func (u *UnitOfWork) RunInTx(ctx context.Context, fn func(ctx context.Context, s repository.Session) error) error {
	conn, release, err := u.conns.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer release()
	return WithTx(ctx, conn, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, newSession(tx))
	})
}

var _ repository.UnitOfWork = (*UnitOfWork)(nil)
