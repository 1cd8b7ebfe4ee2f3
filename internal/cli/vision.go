package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tododia/internal/models"
)

type VisionCmd struct {
	Add    VisionAddCmd    `cmd:"" help:"Add an image to the vision board."`
	List   VisionListCmd   `cmd:"" help:"List vision board items." default:"1"`
	Remove VisionRemoveCmd `cmd:"" help:"Remove an item from the vision board."`
}

type VisionAddCmd struct {
	Image   string `arg:"" help:"Image URL or file path."`
	Caption string `help:"Caption for the image." default:""`
}

func (c *VisionAddCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	item, err := t.AddVisionItem(c.Image, c.Caption)
	if err != nil {
		return err
	}

	fmt.Printf("Added to vision board: %s\n", item.Image)
	return nil
}

type VisionListCmd struct{}

func (c *VisionListCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	if len(t.Vision) == 0 {
		fmt.Println("Vision board is empty. Add an image with 'tododia vision add'.")
		return nil
	}

	for _, item := range t.Vision {
		if item.Caption != "" {
			fmt.Printf("%s  %s  %s\n", shortID(item.ID), item.Image, item.Caption)
		} else {
			fmt.Printf("%s  %s\n", shortID(item.ID), item.Image)
		}
	}
	return nil
}

type VisionRemoveCmd struct {
	ID string `arg:"" help:"Item ID (or unique prefix)."`
}

func (c *VisionRemoveCmd) Run(ctx *Context) error {
	t, err := ctx.RequireTracker()
	if err != nil {
		return err
	}

	item, err := findVisionByPrefix(t.Vision, c.ID)
	if err != nil {
		return err
	}

	if err := t.RemoveVisionItem(item.ID); err != nil {
		return err
	}

	fmt.Printf("Removed from vision board: %s\n", item.Image)
	return nil
}

func findVisionByPrefix(items []models.VisionBoardItem, id string) (models.VisionBoardItem, error) {
	var matches []models.VisionBoardItem
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
		if strings.HasPrefix(item.ID, id) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.VisionBoardItem{}, fmt.Errorf("vision item %q not found", id)
	default:
		return models.VisionBoardItem{}, fmt.Errorf("vision item ID prefix %q is ambiguous (%d matches)", id, len(matches))
	}
}
