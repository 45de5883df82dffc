package notifier

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	tpl "github.com/staybook/backend/pkg/notifier/templates"
)

func TestDeliverSMSIsMocked(t *testing.T) {
	logger, hook := test.NewNullLogger()

	err := Deliver(context.Background(), logger, nil, Job{
		Channel: ChannelSMS,
		To:      "5551234567",
		Text:    "Your StayBook verification code is 123456",
	})
	require.NoError(t, err)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "sms delivered (mock)", entry.Message)
	require.Equal(t, "5551234567", entry.Data["to"])
}

func TestDeliverEmailWithoutMailgunLogsOnly(t *testing.T) {
	logger, hook := test.NewNullLogger()

	err := Deliver(context.Background(), logger, nil, Job{
		Channel:  ChannelEmail,
		To:       "ava@example.com",
		Template: tpl.BookingConfirmed,
		Data: map[string]any{
			"Name":          "Ava Chen",
			"HotelName":     "Oceanfront Resort & Spa",
			"RoomName":      "Deluxe Ocean View",
			"CheckIn":       "2025-06-01",
			"CheckOut":      "2025-06-04",
			"Guests":        2,
			"TotalPrice":    "897.00",
			"ReservationID": "abc-123",
		},
	})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "email logged (mailgun not configured)", entry.Message)
	require.Equal(t, "Booking confirmed at Oceanfront Resort & Spa", entry.Data["subject"])
}

func TestDeliverEmailUnknownTemplate(t *testing.T) {
	logger, _ := test.NewNullLogger()

	err := Deliver(context.Background(), logger, nil, Job{
		Channel:  ChannelEmail,
		To:       "ava@example.com",
		Template: "no_such_template",
	})
	require.Error(t, err)
}

func TestDeliverUnknownChannelDropped(t *testing.T) {
	logger, hook := test.NewNullLogger()

	err := Deliver(context.Background(), logger, nil, Job{Channel: Channel("pigeon"), To: "x"})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.WarnLevel, entry.Level)
}
