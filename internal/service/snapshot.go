package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"

	"coffeeapi/internal/repository"
	"coffeeapi/internal/storage"
)

var ErrSnapshotsDisabled = errors.New("snapshot storage is not configured")

// SnapshotResult describes an uploaded catalog snapshot.
type SnapshotResult struct {
	Key   string `json:"key"`
	Size  int64  `json:"size"`
	Count int    `json:"count"`
	URL   string `json:"url"`
}

// SnapshotService exports the catalog to object storage.
type SnapshotService interface {
	// Create uploads the whole catalog as a JSON array and returns a presigned download URL.
	Create(ctx context.Context) (*SnapshotResult, error)
}

type snapshotService struct {
	store  storage.Storage
	repo   repository.CoffeeRepository
	expiry time.Duration
	now    func() time.Time
}

// NewSnapshotService constructs a SnapshotService. A nil store disables
// snapshots and Create returns ErrSnapshotsDisabled.
func NewSnapshotService(store storage.Storage, repo repository.CoffeeRepository, expiry time.Duration) SnapshotService {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &snapshotService{store: store, repo: repo, expiry: expiry, now: time.Now}
}

func (s *snapshotService) Create(ctx context.Context) (_ *SnapshotResult, err error) {
	ctx, span := tracer.Start(ctx, "SnapshotService.Create")
	defer func() { endSpan(span, err) }()

	if s.store == nil {
		return nil, ErrSnapshotsDisabled
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coffees: %w", err)
	}
	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	key := path.Join("snapshots", fmt.Sprintf("%s-%s.json", s.now().UTC().Format("20060102T150405Z"), uuid.NewString()))
	info, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata:    map[string]string{"coffee-count": strconv.Itoa(len(items))},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.expiry)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &SnapshotResult{Key: info.Key, Size: info.Size, Count: len(items), URL: url}, nil
}
