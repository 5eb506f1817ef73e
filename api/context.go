package api

import (
	"context"
)

type keyType string

const adminSubjectKey keyType = "adminSubject"

// ctxWithAdminSubject records the authenticated token subject.
func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// ctxGetAdminSubject returns the token subject, or "" on public routes.
func ctxGetAdminSubject(ctx context.Context) string {
	subject, _ := ctx.Value(adminSubjectKey).(string)
	return subject
}
