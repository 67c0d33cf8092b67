package files

import "github.com/roomkit/roomkit/internal/infrastructure/storage"

type uploadResponse struct {
	Message string              `json:"message"`
	File    *storage.StoredFile `json:"file"`
}

type deleteAllResponse struct {
	Message string   `json:"message"`
	Deleted []string `json:"deleted"`
	Errors  []string `json:"errors,omitempty"`
}

type spaceInfoResponse struct {
	Message            string           `json:"message"`
	TotalSpace         storage.Quantity `json:"totalSpace"`
	UsedSpace          storage.Quantity `json:"usedSpace"`
	FreeSpace          storage.Quantity `json:"freeSpace"`
	UsedPercentage     float64          `json:"usedPercentage"`
	FreePercentage     float64          `json:"freePercentage"`
	TotalSpaceReadable string           `json:"totalSpaceReadable"`
	UsedSpaceReadable  string           `json:"usedSpaceReadable"`
	FreeSpaceReadable  string           `json:"freeSpaceReadable"`
	DiskPath           string           `json:"diskPath"`
	Unit               string           `json:"unit"`
}
