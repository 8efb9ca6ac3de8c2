package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jrsteele09/taskflow-client/models"
	"github.com/jrsteele09/taskflow-client/transport"
)

type Notifications struct {
	t *transport.Client
}

func (n *Notifications) List(ctx context.Context, filter models.NotificationFilter) (*transport.PageEnvelope[models.Notification], error) {
	page, err := transport.GetPage[models.Notification](ctx, n.t, "/notifications", transport.WithQuery(filter.Query()))
	return page, wrap(err, "[api ListNotifications]")
}

func (n *Notifications) Get(ctx context.Context, id int64) (models.Notification, error) {
	res, err := get[models.Notification](ctx, n.t, fmt.Sprintf("/notifications/%d", id))
	return res, wrap(err, "[api GetNotification] id %d", id)
}

// UnreadCount accepts the count either at the top level or inside data.
func (n *Notifications) UnreadCount(ctx context.Context) (int, error) {
	resp, err := n.t.Send(ctx, http.MethodGet, "/notifications/unread-count", nil)
	if err != nil {
		return 0, wrap(err, "[api UnreadNotificationCount]")
	}
	var body struct {
		Count *int `json:"count"`
		Data  *struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	if err := resp.Decode(&body); err != nil {
		return 0, wrap(err, "[api UnreadNotificationCount]")
	}
	switch {
	case body.Count != nil:
		return *body.Count, nil
	case body.Data != nil:
		return body.Data.Count, nil
	}
	return 0, nil
}

func (n *Notifications) Stats(ctx context.Context) (models.NotificationStats, error) {
	res, err := get[models.NotificationStats](ctx, n.t, "/notifications/stats")
	return res, wrap(err, "[api NotificationStats]")
}

func (n *Notifications) MarkRead(ctx context.Context, id int64) error {
	return wrap(send(ctx, n.t, http.MethodPost, fmt.Sprintf("/notifications/%d/read", id), nil), "[api MarkNotificationRead] id %d", id)
}

func (n *Notifications) MarkUnread(ctx context.Context, id int64) error {
	return wrap(send(ctx, n.t, http.MethodPost, fmt.Sprintf("/notifications/%d/unread", id), nil), "[api MarkNotificationUnread] id %d", id)
}

func (n *Notifications) MarkAllRead(ctx context.Context) error {
	return wrap(send(ctx, n.t, http.MethodPost, "/notifications/mark-all-read", nil), "[api MarkAllNotificationsRead]")
}

func (n *Notifications) Delete(ctx context.Context, id int64) error {
	return wrap(transport.Delete(ctx, n.t, fmt.Sprintf("/notifications/%d", id)), "[api DeleteNotification] id %d", id)
}

func (n *Notifications) DeleteAllRead(ctx context.Context) error {
	return wrap(transport.Delete(ctx, n.t, "/notifications/delete-all-read"), "[api DeleteReadNotifications]")
}

func (n *Notifications) Settings(ctx context.Context) (models.NotificationSettings, error) {
	res, err := get[models.NotificationSettings](ctx, n.t, "/notifications/settings")
	return res, wrap(err, "[api NotificationSettings]")
}

func (n *Notifications) UpdateSettings(ctx context.Context, update models.NotificationSettingsUpdate) (models.NotificationSettings, error) {
	res, err := put[models.NotificationSettings](ctx, n.t, "/notifications/settings", update)
	return res, wrap(err, "[api UpdateNotificationSettings]")
}

func (n *Notifications) Preferences(ctx context.Context) (models.NotificationPreferences, error) {
	res, err := get[models.NotificationPreferences](ctx, n.t, "/user/notification-preferences")
	return res, wrap(err, "[api NotificationPreferences]")
}

func (n *Notifications) UpdatePreferences(ctx context.Context, prefs models.NotificationPreferences) (models.NotificationPreferences, error) {
	res, err := put[models.NotificationPreferences](ctx, n.t, "/user/notification-preferences", prefs)
	return res, wrap(err, "[api UpdateNotificationPreferences]")
}

func (n *Notifications) SubscribePush(ctx context.Context) error {
	return wrap(send(ctx, n.t, http.MethodPost, "/notifications/push/subscribe", nil), "[api SubscribePush]")
}

func (n *Notifications) SendTest(ctx context.Context) error {
	return wrap(send(ctx, n.t, http.MethodPost, "/notifications/test", nil), "[api SendTestNotification]")
}
