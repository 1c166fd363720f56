package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type subjectKey struct{}

var (
	traceIDKeyInstance = traceIDKey{}
	subjectKeyInstance = subjectKey{}
)

// Subject is the caller identity established by the gateway.
type Subject struct {
	ID   string
	Role string
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(traceIDKeyInstance).(string)
	return traceID, ok
}

func WithSubject(ctx context.Context, subject Subject) context.Context {
	return context.WithValue(ctx, subjectKeyInstance, subject)
}

func GetSubject(ctx context.Context) (Subject, bool) {
	subject, ok := ctx.Value(subjectKeyInstance).(Subject)
	if !ok || subject.ID == "" {
		return Subject{}, false
	}
	return subject, true
}

func GetSubjectID(ctx context.Context) (string, bool) {
	subject, ok := GetSubject(ctx)
	return subject.ID, ok
}

func GetSubjectRole(ctx context.Context) (string, bool) {
	subject, ok := GetSubject(ctx)
	if !ok || subject.Role == "" {
		return "", false
	}
	return subject.Role, true
}
