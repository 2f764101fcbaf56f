package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/authcore/internal/model"
)

var _ EmailSender = (*BucketSender)(nil)

type archivedMessage struct {
	Message
	SentAt time.Time `json:"sentAt"`
}

// BucketSender archives each message as an HTML body and a JSON metadata
// object instead of delivering it. Objects are laid out by date.
type BucketSender struct {
	storage model.ObjectStorage
	now     func() time.Time
}

func NewBucketSender(storage model.ObjectStorage) *BucketSender {
	return &BucketSender{
		storage: storage,
		now:     time.Now,
	}
}

func (s *BucketSender) SendEmail(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}

	now := s.now().UTC()
	base := fmt.Sprintf("%s/%s_%s_%s", now.Format("2006/01/02"), now.Format("150405"), msg.Tag, uuid.NewString())

	if err := s.storage.Put(ctx, base+".html", "text/html; charset=utf-8", []byte(msg.BodyHTML)); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSend, err)
	}

	meta, err := json.Marshal(archivedMessage{Message: msg, SentAt: now})
	if err != nil {
		return fmt.Errorf("%w: failed to encode metadata: %v", ErrFailedToSend, err)
	}
	if err := s.storage.Put(ctx, base+".json", "application/json", meta); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSend, err)
	}

	return nil
}
