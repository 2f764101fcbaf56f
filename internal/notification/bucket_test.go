package notification

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedObject struct {
	key         string
	contentType string
	data        []byte
}

type fakeStorage struct {
	objects []storedObject
	err     error
}

func (f *fakeStorage) Put(_ context.Context, key, contentType string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.objects = append(f.objects, storedObject{key: key, contentType: contentType, data: data})
	return nil
}

func TestBucketSender_SendEmail(t *testing.T) {
	storage := &fakeStorage{}
	s := NewBucketSender(storage)
	s.now = func() time.Time { return time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC) }

	require.NoError(t, s.SendEmail(context.Background(), validMessage()))
	require.Len(t, storage.objects, 2)

	html, meta := storage.objects[0], storage.objects[1]
	assert.True(t, strings.HasPrefix(html.key, "2024/03/09/143005_confirm-email_"))
	assert.True(t, strings.HasSuffix(html.key, ".html"))
	assert.Equal(t, "text/html; charset=utf-8", html.contentType)
	assert.Equal(t, "<p>123456</p>", string(html.data))

	assert.Equal(t, strings.TrimSuffix(html.key, ".html")+".json", meta.key)
	assert.Equal(t, "application/json", meta.contentType)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(meta.data, &decoded))
	assert.Equal(t, "a@x.com", decoded["to"])
	assert.Equal(t, "Confirm your email", decoded["subject"])
	assert.Equal(t, "2024-03-09T14:30:05Z", decoded["sentAt"])
	assert.NotContains(t, decoded, "BodyHTML")
}

func TestBucketSender_Errors(t *testing.T) {
	t.Run("storage failure", func(t *testing.T) {
		s := NewBucketSender(&fakeStorage{err: errors.New("bucket gone")})
		err := s.SendEmail(context.Background(), validMessage())
		require.ErrorIs(t, err, ErrFailedToSend)
		assert.Contains(t, err.Error(), "bucket gone")
	})

	t.Run("invalid message", func(t *testing.T) {
		storage := &fakeStorage{}
		msg := validMessage()
		msg.Subject = " "

		require.ErrorIs(t, NewBucketSender(storage).SendEmail(context.Background(), msg), ErrFailedToSend)
		assert.Empty(t, storage.objects)
	})
}
