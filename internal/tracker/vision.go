package tracker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/tododia/internal/models"
)

// AddVisionItem appends a picture to the vision board.
func (t *Tracker) AddVisionItem(image, caption string) (models.VisionBoardItem, error) {
	if image == "" {
		return models.VisionBoardItem{}, fmt.Errorf("vision board item needs an image reference")
	}

	item := models.VisionBoardItem{
		ID:      uuid.New().String(),
		Image:   image,
		Caption: caption,
	}
	t.Vision = append(t.Vision, item)
	if err := t.store.SaveVision(t.username, t.Vision); err != nil {
		return models.VisionBoardItem{}, err
	}
	return item, nil
}

// RemoveVisionItem removes a vision board item by id.
func (t *Tracker) RemoveVisionItem(id string) error {
	items := make([]models.VisionBoardItem, 0, len(t.Vision))
	found := false
	for _, item := range t.Vision {
		if item.ID == id {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return fmt.Errorf("vision board item not found: %s", id)
	}

	t.Vision = items
	return t.store.SaveVision(t.username, t.Vision)
}
