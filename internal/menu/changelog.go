package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lezzetduragi/menu-service/internal/storage"
)

// Change is one audit entry describing a menu mutation. Entries are
// write-only: nothing in the service reads them back.
type Change struct {
	Type      string    `json:"type"`
	ItemName  string    `json:"itemName"`
	Timestamp time.Time `json:"timestamp"`
}

// ChangeLog persists one object per menu change under the changes/ prefix.
type ChangeLog struct {
	store storage.ObjectStore
}

// NewChangeLog creates a ChangeLog over the given object store.
func NewChangeLog(store storage.ObjectStore) *ChangeLog {
	return &ChangeLog{store: store}
}

// Record writes an audit object for the change. The key embeds the change's
// millisecond timestamp, type and subject name.
func (l *ChangeLog) Record(ctx context.Context, changeType, itemName string) error {
	change := Change{
		Type:      changeType,
		ItemName:  itemName,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encode change: %w", err)
	}

	key := fmt.Sprintf("changes/%d-%s-%s.json", change.Timestamp.UnixMilli(), changeType, itemName)
	if err := l.store.Put(ctx, key, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		return fmt.Errorf("write change %q: %w", key, err)
	}
	return nil
}
