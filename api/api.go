// Package api exposes one typed function per REST endpoint.
package api

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jrsteele09/taskflow-client/transport"
)

// Client groups the endpoint sets of every resource.
type Client struct {
	Transport     *transport.Client
	Auth          *Auth
	Projects      *Projects
	Tasks         *Tasks
	Comments      *Comments
	Attachments   *Attachments
	Tags          *Tags
	Files         *Files
	TimeEntries   *TimeEntries
	Notifications *Notifications
	Mentions      *Mentions
	Dependencies  *Dependencies
	Activities    *Activities
	Reports       *Reports
	Dashboard     *Dashboard
	Users         *Users
}

func New(t *transport.Client) *Client {
	return &Client{
		Transport:     t,
		Auth:          &Auth{t: t},
		Projects:      &Projects{t: t},
		Tasks:         &Tasks{t: t},
		Comments:      &Comments{t: t},
		Attachments:   &Attachments{t: t},
		Tags:          &Tags{t: t},
		Files:         &Files{t: t},
		TimeEntries:   &TimeEntries{t: t},
		Notifications: &Notifications{t: t},
		Mentions:      &Mentions{t: t},
		Dependencies:  &Dependencies{t: t},
		Activities:    &Activities{t: t},
		Reports:       &Reports{t: t},
		Dashboard:     &Dashboard{t: t},
		Users:         &Users{t: t},
	}
}

func get[T any](ctx context.Context, t *transport.Client, path string, opts ...transport.RequestOption) (T, error) {
	env, err := transport.Get[T](ctx, t, path, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

func post[T any](ctx context.Context, t *transport.Client, path string, body any, opts ...transport.RequestOption) (T, error) {
	env, err := transport.Post[T](ctx, t, path, body, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

func put[T any](ctx context.Context, t *transport.Client, path string, body any) (T, error) {
	env, err := transport.Put[T](ctx, t, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// send is for endpoints whose response data is irrelevant.
func send(ctx context.Context, t *transport.Client, method, path string, body any) error {
	_, err := t.Send(ctx, method, path, body)
	return err
}

func wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
