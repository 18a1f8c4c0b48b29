package media

import (
	"context"
	"io"
)

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

// Image slots a progress card references.
const (
	SlotBefore = "before"
	SlotAfter  = "after"
)

// AllowedMimeTypes defines which image types are accepted
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// File is one binary to store.
type File struct {
	Reader io.Reader
	Size   int64
	Name   string // original filename, advisory only
}

// Store saves a slot-labelled image for an owner and resolves it to a
// retrievable URL. Keys embed the owner, slot, and upload instant, so
// concurrent uploads never collide and each call is independent.
type Store interface {
	Upload(ctx context.Context, ownerID string, file File, slot string) (string, error)
}

func ValidSlot(slot string) bool {
	return slot == SlotBefore || slot == SlotAfter
}
