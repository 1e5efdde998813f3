package repository

import "context"

// Session exposes the repositories bound to one storage handle.
type Session interface {
	Users() UserRepository
	Mentors() MentorProfileRepository
}

// UnitOfWork hands out a request-scoped Session. The handle is acquired when
// fn starts and released when it returns, whatever the outcome.
//
// Run executes statements in autocommit mode; RunInTx commits when fn returns
// nil and rolls back otherwise.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(ctx context.Context, s Session) error) error
	RunInTx(ctx context.Context, fn func(ctx context.Context, s Session) error) error
}
