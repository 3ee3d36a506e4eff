package service

import (
	"context"
	"time"

	"github.com/khoahotran/resume-portal/pkg/apiclient"
)

// Backend is the slice of apiclient.Client the transformers need.
type Backend interface {
	Get(ctx context.Context, path string, params apiclient.Params, out any, opts ...apiclient.CallOption) error
}

// Clock returns the current time. Transformers that derive status from the
// calendar take one so tests can pin the year.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}
