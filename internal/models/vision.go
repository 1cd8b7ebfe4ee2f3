package models

// VisionBoardItem is a picture pinned to the user's vision board.
// Image holds either an inline base64-encoded image or a URL.
type VisionBoardItem struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
}
